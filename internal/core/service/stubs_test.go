package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
)

// ── Profiles / guard ──────────────────────────────────────────────────────────

type stubProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newStubProfileRepo(profiles ...*domain.Profile) *stubProfileRepo {
	r := &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	for _, existing := range r.profiles {
		if existing.Email == p.Email {
			return nil, domain.ErrProfileExists
		}
	}
	copy := cloneProfile(p)
	if copy.ID == "" {
		copy.ID = "profile_" + p.Email
	}
	r.profiles[copy.ID] = cloneProfile(copy)
	return cloneProfile(copy), nil
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return cloneProfile(p), nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func adminProfile(id string) *domain.Profile {
	return &domain.Profile{ID: id, Role: domain.RoleAdmin, Email: id + "@example.com"}
}

func patientProfile(id string) *domain.Profile {
	return &domain.Profile{ID: id, Role: domain.RolePatient, Email: id + "@example.com"}
}

// testGuard builds an action-mode guard over the given profiles.
func testGuard(profiles ...*domain.Profile) *auth.Guard {
	return auth.NewGuard(newStubProfileRepo(profiles...), zerolog.Nop())
}

// identityCtx returns a context carrying an authenticated identity.
func identityCtx(id string) context.Context {
	return auth.WithIdentity(context.Background(), &domain.Identity{ID: id, Email: id + "@example.com"})
}

// ── Revalidator ───────────────────────────────────────────────────────────────

type stubRevalidator struct {
	hints [][]string
}

func (r *stubRevalidator) Hint(keys ...string) {
	r.hints = append(r.hints, keys)
}

// ── Moods ─────────────────────────────────────────────────────────────────────

type stubMoodRepo struct {
	entries   []*domain.MoodEntry
	lastLimit int
	insertErr error
}

func (r *stubMoodRepo) Insert(_ context.Context, e *domain.MoodEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubMoodRepo) ListByPatient(_ context.Context, patientID string, limit int) ([]*domain.MoodEntry, error) {
	r.lastLimit = limit
	var out []*domain.MoodEntry
	for _, e := range r.entries {
		if e.PatientID == patientID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ── Programs / categories ─────────────────────────────────────────────────────

type stubProgramRepo struct {
	programs   map[string]*domain.Program
	lastFilter ports.ListProgramsFilter
}

func newStubProgramRepo(programs ...*domain.Program) *stubProgramRepo {
	r := &stubProgramRepo{programs: make(map[string]*domain.Program)}
	for _, p := range programs {
		r.programs[p.ID] = p
	}
	return r
}

func (r *stubProgramRepo) Create(_ context.Context, p *domain.Program) error {
	clone := *p
	r.programs[p.ID] = &clone
	return nil
}

func (r *stubProgramRepo) Update(_ context.Context, p *domain.Program) error {
	if _, ok := r.programs[p.ID]; !ok {
		return domain.ErrProgramNotFound
	}
	clone := *p
	r.programs[p.ID] = &clone
	return nil
}

func (r *stubProgramRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.programs[id]; !ok {
		return domain.ErrProgramNotFound
	}
	delete(r.programs, id)
	return nil
}

func (r *stubProgramRepo) FindByID(_ context.Context, id string) (*domain.Program, error) {
	p, ok := r.programs[id]
	if !ok {
		return nil, domain.ErrProgramNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProgramRepo) List(_ context.Context, filter ports.ListProgramsFilter) ([]*domain.Program, error) {
	r.lastFilter = filter
	var out []*domain.Program
	for _, p := range r.programs {
		if filter.PublishedOnly && !p.Published {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProgramRepo) SetCategories(_ context.Context, programID string, categoryIDs []string) error {
	p, ok := r.programs[programID]
	if !ok {
		return domain.ErrProgramNotFound
	}
	p.CategoryIDs = categoryIDs
	return nil
}

type stubCategoryRepo struct {
	categories map[string]*domain.Category
}

func newStubCategoryRepo(categories ...*domain.Category) *stubCategoryRepo {
	r := &stubCategoryRepo{categories: make(map[string]*domain.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ── Modules / contents ────────────────────────────────────────────────────────

type stubModuleRepo struct {
	modules map[string]*domain.Module
}

func newStubModuleRepo(modules ...*domain.Module) *stubModuleRepo {
	r := &stubModuleRepo{modules: make(map[string]*domain.Module)}
	for _, m := range modules {
		r.modules[m.ID] = m
	}
	return r
}

func (r *stubModuleRepo) Create(_ context.Context, m *domain.Module) error {
	clone := *m
	r.modules[m.ID] = &clone
	return nil
}

func (r *stubModuleRepo) Update(_ context.Context, m *domain.Module) error {
	if _, ok := r.modules[m.ID]; !ok {
		return domain.ErrModuleNotFound
	}
	clone := *m
	r.modules[m.ID] = &clone
	return nil
}

func (r *stubModuleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.modules[id]; !ok {
		return domain.ErrModuleNotFound
	}
	delete(r.modules, id)
	return nil
}

func (r *stubModuleRepo) FindByID(_ context.Context, id string) (*domain.Module, error) {
	m, ok := r.modules[id]
	if !ok {
		return nil, domain.ErrModuleNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubModuleRepo) ListByProgram(_ context.Context, programID string) ([]*domain.Module, error) {
	var out []*domain.Module
	for _, m := range r.modules {
		if m.ProgramID == programID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubContentRepo struct {
	contents map[string]*domain.ContentItem
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{contents: make(map[string]*domain.ContentItem)}
}

func (r *stubContentRepo) Create(_ context.Context, c *domain.ContentItem) error {
	clone := *c
	r.contents[c.ID] = &clone
	return nil
}

func (r *stubContentRepo) Update(_ context.Context, c *domain.ContentItem) error {
	if _, ok := r.contents[c.ID]; !ok {
		return domain.ErrContentNotFound
	}
	clone := *c
	r.contents[c.ID] = &clone
	return nil
}

func (r *stubContentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contents[id]; !ok {
		return domain.ErrContentNotFound
	}
	delete(r.contents, id)
	return nil
}

func (r *stubContentRepo) FindByID(_ context.Context, id string) (*domain.ContentItem, error) {
	c, ok := r.contents[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContentRepo) ListByModule(_ context.Context, moduleID string) ([]*domain.ContentItem, error) {
	var out []*domain.ContentItem
	for _, c := range r.contents {
		if c.ModuleID == moduleID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ── Enrollments ───────────────────────────────────────────────────────────────

type stubEnrollmentRepo struct {
	enrollments []*domain.Enrollment
}

func (r *stubEnrollmentRepo) Create(_ context.Context, e *domain.Enrollment) error {
	for _, existing := range r.enrollments {
		if existing.PatientID == e.PatientID && existing.ProgramID == e.ProgramID {
			return domain.ErrAlreadyEnrolled
		}
	}
	clone := *e
	r.enrollments = append(r.enrollments, &clone)
	return nil
}

func (r *stubEnrollmentRepo) ListByPatient(_ context.Context, patientID string) ([]*domain.Enrollment, error) {
	var out []*domain.Enrollment
	for _, e := range r.enrollments {
		if e.PatientID == patientID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEnrollmentRepo) ListSince(_ context.Context, from time.Time) ([]*domain.Enrollment, error) {
	var out []*domain.Enrollment
	for _, e := range r.enrollments {
		if !e.EnrolledAt.Before(from) {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}
