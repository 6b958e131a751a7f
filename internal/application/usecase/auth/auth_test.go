// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/walletbook/backend/internal/application/adapter"
	domainerror "github.com/walletbook/backend/internal/domain/error"
	"github.com/walletbook/backend/internal/integration/adapters"
	"github.com/walletbook/backend/internal/integration/email"
	"github.com/walletbook/backend/internal/integration/persistence"
	"github.com/walletbook/backend/internal/integration/persistence/model"
)

type authEnv struct {
	db          *gorm.DB
	users       adapter.UserRepository
	passwords   adapter.PasswordService
	tokens      adapter.TokenService
	resetTokens adapter.PasswordResetTokenService
	sender      *email.MockEmailSender
	emails      adapter.EmailService
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	tokenRepo := persistence.NewTokenRepository(db)
	sender := email.NewMockEmailSender()

	return &authEnv{
		db:          db,
		users:       persistence.NewUserRepository(db),
		passwords:   adapters.NewPasswordService(),
		tokens:      adapters.NewTokenService("test-secret", tokenRepo),
		resetTokens: adapters.NewPasswordResetTokenService(tokenRepo),
		sender:      sender,
		emails:      email.NewService(sender),
	}
}

func (env *authEnv) register(t *testing.T, emailAddr, password string) *RegisterUserOutput {
	t.Helper()

	uc := NewRegisterUserUseCase(env.users, env.passwords, env.tokens)
	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    emailAddr,
		Name:     "Ada",
		Password: password,
	})
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	return output
}

func authCode(err error) domainerror.AuthErrorCode {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}

func TestRegisterUserUseCase(t *testing.T) {
	t.Run("registers a user and returns a token pair", func(t *testing.T) {
		env := newAuthEnv(t)

		output := env.register(t, "ada@example.com", "correct-horse-battery")

		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a non-empty token pair")
		}
		if output.User == nil || output.User.Email != "ada@example.com" {
			t.Fatalf("unexpected user in output: %+v", output.User)
		}
		if output.User.PasswordHash == "correct-horse-battery" {
			t.Error("expected the password to be hashed")
		}

		claims, err := env.tokens.ValidateAccessToken(context.Background(), output.AccessToken)
		if err != nil {
			t.Fatalf("access token did not validate: %v", err)
		}
		if claims.UserID != output.User.ID {
			t.Errorf("token user %s, expected %s", claims.UserID, output.User.ID)
		}
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		env := newAuthEnv(t)
		uc := NewRegisterUserUseCase(env.users, env.passwords, env.tokens)

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "not-an-email",
			Name:     "Ada",
			Password: "correct-horse-battery",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeInvalidEmail {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeInvalidEmail)
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		env := newAuthEnv(t)
		uc := NewRegisterUserUseCase(env.users, env.passwords, env.tokens)

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ada@example.com",
			Name:     "Ada",
			Password: "short",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeWeakPassword {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeWeakPassword)
		}
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword in chain, got %v", err)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		env := newAuthEnv(t)
		env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewRegisterUserUseCase(env.users, env.passwords, env.tokens)
		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ada@example.com",
			Name:     "Another Ada",
			Password: "different-password",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	t.Run("logs in with valid credentials", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewLoginUserUseCase(env.users, env.passwords, env.tokens)
		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ada@example.com",
			Password: "correct-horse-battery",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a non-empty token pair")
		}
		if output.User.ID != registered.User.ID {
			t.Errorf("logged in as %s, expected %s", output.User.ID, registered.User.ID)
		}
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		env := newAuthEnv(t)
		env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewLoginUserUseCase(env.users, env.passwords, env.tokens)

		_, unknownErr := uc.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "correct-horse-battery",
		})
		_, wrongErr := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ada@example.com",
			Password: "wrong-password",
		})

		if unknownErr == nil || wrongErr == nil {
			t.Fatal("expected both logins to fail")
		}
		if code := authCode(unknownErr); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("unknown email code %s, expected %s", code, domainerror.ErrCodeInvalidCredentials)
		}
		if code := authCode(wrongErr); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("wrong password code %s, expected %s", code, domainerror.ErrCodeInvalidCredentials)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Errorf("messages differ: %q vs %q", unknownErr.Error(), wrongErr.Error())
		}
	})
}

func TestRefreshTokenUseCase(t *testing.T) {
	t.Run("issues a fresh pair for a valid refresh token", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewRefreshTokenUseCase(env.tokens)
		output, err := uc.Execute(context.Background(), RefreshTokenInput{
			RefreshToken: registered.RefreshToken,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := env.tokens.ValidateRefreshToken(context.Background(), output.RefreshToken)
		if err != nil {
			t.Fatalf("new refresh token did not validate: %v", err)
		}
		if claims.UserID != registered.User.ID {
			t.Errorf("token user %s, expected %s", claims.UserID, registered.User.ID)
		}
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		env := newAuthEnv(t)
		uc := NewRefreshTokenUseCase(env.tokens)

		_, err := uc.Execute(context.Background(), RefreshTokenInput{
			RefreshToken: "not-a-jwt",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeInvalidToken {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeInvalidToken)
		}
	})

	t.Run("rejects an access token presented as a refresh token", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewRefreshTokenUseCase(env.tokens)
		_, err := uc.Execute(context.Background(), RefreshTokenInput{
			RefreshToken: registered.AccessToken,
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeInvalidToken {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeInvalidToken)
		}
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		logoutUC := NewLogoutUserUseCase(env.tokens)
		if _, err := logoutUC.Execute(context.Background(), LogoutUserInput{
			RefreshToken: registered.RefreshToken,
		}); err != nil {
			t.Fatalf("failed to log out: %v", err)
		}

		uc := NewRefreshTokenUseCase(env.tokens)
		_, err := uc.Execute(context.Background(), RefreshTokenInput{
			RefreshToken: registered.RefreshToken,
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeInvalidToken {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeInvalidToken)
		}
	})
}

func TestLogoutUserUseCase(t *testing.T) {
	t.Run("invalidates the refresh token", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewLogoutUserUseCase(env.tokens)
		output, err := uc.Execute(context.Background(), LogoutUserInput{
			RefreshToken: registered.RefreshToken,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected logout to report success")
		}

		if _, err := env.tokens.ValidateRefreshToken(context.Background(), registered.RefreshToken); err == nil {
			t.Error("expected the refresh token to be rejected after logout")
		}
	})
}

func TestForgotPasswordUseCase(t *testing.T) {
	t.Run("sends a reset email to a registered address", func(t *testing.T) {
		env := newAuthEnv(t)
		env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewForgotPasswordUseCase(env.users, env.resetTokens, env.emails, "https://app.walletbook.dev")
		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "ada@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("message %q, expected %q", output.Message, forgotPasswordMessage)
		}

		if len(env.sender.SentEmails) != 1 {
			t.Fatalf("expected 1 email, got %d", len(env.sender.SentEmails))
		}
		sent := env.sender.SentEmails[0]
		if sent.To != "ada@example.com" {
			t.Errorf("email sent to %q, expected ada@example.com", sent.To)
		}
		if !strings.Contains(sent.HTML, "https://app.walletbook.dev/reset-password?token=") {
			t.Error("expected the reset link in the email body")
		}
	})

	t.Run("unknown email gets the same message and no email", func(t *testing.T) {
		env := newAuthEnv(t)

		uc := NewForgotPasswordUseCase(env.users, env.resetTokens, env.emails, "https://app.walletbook.dev")
		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "nobody@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("message %q, expected %q", output.Message, forgotPasswordMessage)
		}
		if len(env.sender.SentEmails) != 0 {
			t.Errorf("expected no emails, got %d", len(env.sender.SentEmails))
		}
	})

	t.Run("works without an email service configured", func(t *testing.T) {
		env := newAuthEnv(t)
		env.register(t, "ada@example.com", "correct-horse-battery")

		uc := NewForgotPasswordUseCase(env.users, env.resetTokens, nil, "https://app.walletbook.dev")
		output, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "ada@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message != forgotPasswordMessage {
			t.Errorf("message %q, expected %q", output.Message, forgotPasswordMessage)
		}
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		env := newAuthEnv(t)

		uc := NewForgotPasswordUseCase(env.users, env.resetTokens, env.emails, "https://app.walletbook.dev")
		_, err := uc.Execute(context.Background(), ForgotPasswordInput{Email: "not-an-email"})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeInvalidEmail {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeInvalidEmail)
		}
	})
}

func TestResetPasswordUseCase(t *testing.T) {
	newResetUC := func(env *authEnv) *ResetPasswordUseCase {
		return NewResetPasswordUseCase(env.users, env.passwords, env.resetTokens, env.tokens)
	}

	t.Run("resets the password and revokes existing sessions", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		resetToken, err := env.resetTokens.GenerateResetToken(context.Background(), registered.User.ID, registered.User.Email)
		if err != nil {
			t.Fatalf("failed to generate reset token: %v", err)
		}

		output, err := newResetUC(env).Execute(context.Background(), ResetPasswordInput{
			Token:       resetToken.Token,
			NewPassword: "brand-new-password",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected reset to report success")
		}

		loginUC := NewLoginUserUseCase(env.users, env.passwords, env.tokens)
		if _, err := loginUC.Execute(context.Background(), LoginUserInput{
			Email:    "ada@example.com",
			Password: "correct-horse-battery",
		}); err == nil {
			t.Error("expected the old password to stop working")
		}
		if _, err := loginUC.Execute(context.Background(), LoginUserInput{
			Email:    "ada@example.com",
			Password: "brand-new-password",
		}); err != nil {
			t.Errorf("expected the new password to work: %v", err)
		}

		if _, err := env.tokens.ValidateRefreshToken(context.Background(), registered.RefreshToken); err == nil {
			t.Error("expected pre-reset refresh tokens to be revoked")
		}
	})

	t.Run("a reset token is single use", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		resetToken, err := env.resetTokens.GenerateResetToken(context.Background(), registered.User.ID, registered.User.Email)
		if err != nil {
			t.Fatalf("failed to generate reset token: %v", err)
		}

		uc := newResetUC(env)
		if _, err := uc.Execute(context.Background(), ResetPasswordInput{
			Token:       resetToken.Token,
			NewPassword: "brand-new-password",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = uc.Execute(context.Background(), ResetPasswordInput{
			Token:       resetToken.Token,
			NewPassword: "yet-another-password",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeInvalidResetToken {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeInvalidResetToken)
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		env := newAuthEnv(t)

		_, err := newResetUC(env).Execute(context.Background(), ResetPasswordInput{
			Token:       "deadbeef",
			NewPassword: "brand-new-password",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeInvalidResetToken {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeInvalidResetToken)
		}
	})

	t.Run("rejects a weak replacement password", func(t *testing.T) {
		env := newAuthEnv(t)
		registered := env.register(t, "ada@example.com", "correct-horse-battery")

		resetToken, err := env.resetTokens.GenerateResetToken(context.Background(), registered.User.ID, registered.User.Email)
		if err != nil {
			t.Fatalf("failed to generate reset token: %v", err)
		}

		_, err = newResetUC(env).Execute(context.Background(), ResetPasswordInput{
			Token:       resetToken.Token,
			NewPassword: "short",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if code := authCode(err); code != domainerror.ErrCodeWeakPassword {
			t.Errorf("error code %s, expected %s", code, domainerror.ErrCodeWeakPassword)
		}
	})
}
