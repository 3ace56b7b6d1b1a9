package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/carepath/learning-platform/internal/core/action"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
	"github.com/carepath/learning-platform/internal/core/validate"
)

// ContentService implements content item actions. Bodies are authored in
// markdown and stored alongside a rendered, sanitized HTML copy so readers
// never receive unsanitized markup.
type ContentService struct {
	guard    *auth.Guard
	contents ports.ContentRepository
	modules  ports.ModuleRepository
	reval    ports.Revalidator
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	log      zerolog.Logger
}

func NewContentService(
	guard *auth.Guard,
	contents ports.ContentRepository,
	modules ports.ModuleRepository,
	reval ports.Revalidator,
	log zerolog.Logger,
) *ContentService {
	return &ContentService{
		guard:    guard,
		contents: contents,
		modules:  modules,
		reval:    reval,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
		log:      log,
	}
}

// renderBody converts markdown to sanitized HTML.
func (s *ContentService) renderBody(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}

func (s *ContentService) Create(ctx context.Context, in ports.CreateContentInput) action.Response[domain.ContentItem] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.ContentItem](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.ContentItem](err)
	}

	module, err := s.modules.FindByID(ctx, in.ModuleID)
	if err != nil {
		return action.FromError[domain.ContentItem](err)
	}

	html, err := s.renderBody(in.BodyMarkdown)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to render content body")
		return action.FromError[domain.ContentItem](err)
	}

	now := time.Now().UTC()
	content := &domain.ContentItem{
		ID:           uuid.NewString(),
		ModuleID:     module.ID,
		Title:        in.Title,
		Kind:         domain.ContentKind(in.Kind),
		BodyMarkdown: in.BodyMarkdown,
		BodyHTML:     html,
		MediaURL:     in.MediaURL,
		Position:     in.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.contents.Create(ctx, content); err != nil {
		s.log.Error().Err(err).Str("module_id", in.ModuleID).Msg("failed to create content")
		return action.FromError[domain.ContentItem](err)
	}

	s.reval.Hint("modules:" + module.ID)
	return action.Created(*content)
}

func (s *ContentService) Update(ctx context.Context, in ports.UpdateContentInput) action.Response[domain.ContentItem] {
	if fe := validate.Struct(in); fe != nil {
		return action.Invalid[domain.ContentItem](fe)
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[domain.ContentItem](err)
	}

	content, err := s.contents.FindByID(ctx, in.ID)
	if err != nil {
		return action.FromError[domain.ContentItem](err)
	}

	html, err := s.renderBody(in.BodyMarkdown)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to render content body")
		return action.FromError[domain.ContentItem](err)
	}

	content.Title = in.Title
	content.Kind = domain.ContentKind(in.Kind)
	content.BodyMarkdown = in.BodyMarkdown
	content.BodyHTML = html
	content.MediaURL = in.MediaURL
	content.Position = in.Position
	content.UpdatedAt = time.Now().UTC()

	if err := s.contents.Update(ctx, content); err != nil {
		s.log.Error().Err(err).Str("content_id", in.ID).Msg("failed to update content")
		return action.FromError[domain.ContentItem](err)
	}

	s.reval.Hint("modules:" + content.ModuleID)
	return action.OK(*content)
}

func (s *ContentService) Delete(ctx context.Context, id string) action.Response[ports.Deleted] {
	if id == "" {
		return action.Invalid[ports.Deleted](map[string][]string{"id": {"id is required"}})
	}
	if _, err := s.guard.Require(ctx, domain.RoleAdmin); err != nil {
		return action.FromError[ports.Deleted](err)
	}

	content, err := s.contents.FindByID(ctx, id)
	if err != nil {
		return action.FromError[ports.Deleted](err)
	}
	if err := s.contents.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("content_id", id).Msg("failed to delete content")
		return action.FromError[ports.Deleted](err)
	}

	s.reval.Hint("modules:" + content.ModuleID)
	return action.OK(ports.Deleted{ID: id})
}

func (s *ContentService) Get(ctx context.Context, id string) action.Response[domain.ContentItem] {
	if _, err := s.guard.RequireAny(ctx); err != nil {
		return action.FromError[domain.ContentItem](err)
	}

	content, err := s.contents.FindByID(ctx, id)
	if err != nil {
		return action.FromError[domain.ContentItem](err)
	}
	return action.OK(*content)
}

func (s *ContentService) ListByModule(ctx context.Context, moduleID string) action.Response[[]domain.ContentItem] {
	if _, err := s.guard.RequireAny(ctx); err != nil {
		return action.FromError[[]domain.ContentItem](err)
	}

	contents, err := s.contents.ListByModule(ctx, moduleID)
	if err != nil {
		s.log.Error().Err(err).Str("module_id", moduleID).Msg("failed to list contents")
		return action.FromError[[]domain.ContentItem](err)
	}

	out := make([]domain.ContentItem, len(contents))
	for i, c := range contents {
		out[i] = *c
	}
	return action.OK(out)
}
