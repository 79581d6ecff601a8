package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/praktyka/records-api/internal/core/domain"
	"github.com/praktyka/records-api/internal/core/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateHasCompany(_ context.Context, id string, hasCompany bool) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.HasCompany = hasCompany
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAccountService(t *testing.T) (*AccountService, *stubUserRepo, *token.Manager) {
	t.Helper()
	repo := newStubUserRepo()
	tokens, err := token.NewManager("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return NewAccountService(repo, tokens, zerolog.Nop()), repo, tokens
}

func TestAccountService_Register_Success(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pw123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pw123" || user.PasswordHash == "" {
		t.Fatalf("expected password to be hashed")
	}
	if !VerifyPassword("pw123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.IsAdmin || user.HasCompany {
		t.Fatalf("new users must default both flags to false")
	}
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	cases := [][3]string{
		{"", "a@x.com", "pw"},
		{"A", "", "pw"},
		{"A", "a@x.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), c[0], c[1], c[2]); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %v, got %v", c, err)
		}
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestAccountService(t)

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "pw"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "B", "a@x.com", "pw2"); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate registration must not create a second record, have %d", len(repo.users))
	}
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	svc, _, tokens := newTestAccountService(t)

	created, err := svc.Register(context.Background(), "A", "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	signed, user, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token")
	}
	if user.ID != created.ID {
		t.Fatalf("login returned wrong user: %s vs %s", user.ID, created.ID)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != created.ID {
		t.Fatalf("token claims carry wrong id: %s", claims.UserID)
	}
	if claims.IsAdmin {
		t.Fatalf("fresh user must not be admin")
	}
}

func TestAccountService_Login_FailuresAreIdentical(t *testing.T) {
	svc, _, _ := newTestAccountService(t)
	_, _ = svc.Register(context.Background(), "A", "a@x.com", "pw")

	_, _, errUnknown := svc.Login(context.Background(), "ghost@x.com", "pw")
	_, _, errWrongPw := svc.Login(context.Background(), "a@x.com", "nope")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	// identical observable failure for both cases
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAccountService_SetHasCompany_SelfOnly(t *testing.T) {
	svc, repo, _ := newTestAccountService(t)

	self, _ := svc.Register(context.Background(), "A", "a@x.com", "pw")
	other, _ := svc.Register(context.Background(), "B", "b@x.com", "pw")

	// admin flag must not widen access
	repo.users[other.ID].IsAdmin = true

	if _, err := svc.SetHasCompany(context.Background(), other.ID, self.ID, true); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-self update, got %v", err)
	}

	updated, err := svc.SetHasCompany(context.Background(), self.ID, self.ID, true)
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if !updated.HasCompany {
		t.Fatalf("expected hasCompany to be set")
	}
}

func TestAccountService_SetHasCompany_TargetMissing(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	if _, err := svc.SetHasCompany(context.Background(), "ghost", "ghost", true); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAccountService_DeleteUser(t *testing.T) {
	svc, _, _ := newTestAccountService(t)

	user, _ := svc.Register(context.Background(), "A", "a@x.com", "pw")

	if err := svc.DeleteUser(context.Background(), user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if err := svc.DeleteUser(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	for _, u := range users {
		if u.ID == user.ID {
			t.Fatalf("deleted user still listed")
		}
	}
}
