package auth

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
	err     error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

type mockProfileRepo struct {
	created []profile.Profile
	err     error
}

func (m *mockProfileRepo) Create(_ context.Context, p profile.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, p)
	return nil
}

func (m *mockProfileRepo) FindByUserID(context.Context, uuid.UUID) (profile.Profile, error) {
	return profile.Profile{}, repository.ErrProfileNotFound
}

func (m *mockProfileRepo) FindByUserIDs(context.Context, []uuid.UUID) (map[uuid.UUID]profile.Profile, error) {
	return map[uuid.UUID]profile.Profile{}, nil
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:    "anna@example.com",
		Password: "correct-horse",
		Username: "anna",
		FullName: "Anna A",
	}
}

func TestService_Register_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *RegisterInput)
	}{
		{name: "blank email", mutate: func(in *RegisterInput) { in.Email = "  " }},
		{name: "short password", mutate: func(in *RegisterInput) { in.Password = "short" }},
		{name: "blank username", mutate: func(in *RegisterInput) { in.Username = "" }},
		{name: "blank full name", mutate: func(in *RegisterInput) { in.FullName = "   " }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := NewService(newMockUserRepo(), &mockProfileRepo{})
			in := validRegisterInput()
			c.mutate(&in)

			_, err := svc.Register(context.Background(), in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Register_Success(t *testing.T) {
	users := newMockUserRepo()
	profiles := &mockProfileRepo{}
	svc := NewService(users, profiles)

	in := validRegisterInput()
	in.Email = "  Anna@Example.COM "

	u, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "anna@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}
	if len(profiles.created) != 1 {
		t.Fatalf("registration must create the profile row")
	}
	if profiles.created[0].UserID != u.ID || profiles.created[0].Username != "anna" {
		t.Fatalf("profile row wrong: %+v", profiles.created[0])
	}

	stored := users.byID[u.ID]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	svc := NewService(users, &mockProfileRepo{})

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), validRegisterInput())
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	users := newMockUserRepo()
	svc := NewService(users, &mockProfileRepo{})

	if _, err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "ANNA@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Email != "anna@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "anna@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "correct-horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
