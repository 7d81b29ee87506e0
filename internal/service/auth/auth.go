// Package auth owns the credential lifecycle: login, logout, refresh,
// and the profile endpoint. It is the only writer of the token store
// besides the transport's 401 handler.
package auth

import (
	"context"
	"log/slog"

	"github.com/mapadengue/mapadengue-go/internal/domain"
	"github.com/mapadengue/mapadengue-go/internal/service"
	"github.com/mapadengue/mapadengue-go/internal/service/municipios"
)

// Service is the auth façade.
type Service struct {
	deps service.Deps
}

// New creates the façade.
func New(deps service.Deps) *Service {
	return &Service{deps: deps}
}

// Login validates credentials and establishes the session. When the
// live endpoint is absent (404) or unreachable (network, status 0) the
// credentials are checked against the substitute pair instead; wrong
// substitute credentials fail exactly like a live rejection.
func (s *Service) Login(ctx context.Context, email, password string) domain.Result[domain.UserProfile] {
	if s.deps.Mocked() {
		return s.mockLogin(email, password)
	}

	var resp tokenPairWire
	apiErr := s.deps.Transport.PostJSON(ctx, "/auth/login", credentials{Email: email, Password: password}, &resp)
	if apiErr == nil {
		return s.establish(resp)
	}
	if domain.Fallbackable(apiErr) {
		s.logger().Debug("login endpoint unavailable, checking substitute credentials",
			slog.String("kind", string(apiErr.Kind)),
			slog.Int("status", apiErr.Status),
		)
		return s.mockLogin(email, password)
	}
	return domain.Fail[domain.UserProfile](apiErr)
}

func (s *Service) mockLogin(email, password string) domain.Result[domain.UserProfile] {
	if !checkMockCredentials(email, password) {
		return domain.Fail[domain.UserProfile](domain.ErrAuth("credenciais inválidas"))
	}
	return s.establish(mockTokenPair())
}

func (s *Service) establish(pair tokenPairWire) domain.Result[domain.UserProfile] {
	if err := s.deps.Transport.Tokens().SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
		s.logger().Error("failed to persist session", slog.String("error", err.Error()))
		return domain.Fail[domain.UserProfile](domain.ErrServer(500, "failed to persist session"))
	}
	return domain.OK(mapUser(pair.User))
}

// Logout tears down the session. The local session is always cleared,
// even when the live call fails; only non-recoverable upstream errors
// surface.
func (s *Service) Logout(ctx context.Context) domain.Result[bool] {
	if err := s.deps.Transport.Tokens().ClearTokens(); err != nil {
		return domain.Fail[bool](domain.ErrServer(500, "failed to clear session"))
	}
	if s.deps.Mocked() {
		return domain.OK(true)
	}

	if apiErr := s.deps.Transport.PostJSON(ctx, "/auth/logout", nil, nil); apiErr != nil {
		if domain.Fallbackable(apiErr) || apiErr.Kind == domain.ErrorKindAuth {
			// The server-side session is already gone or unreachable;
			// locally we are logged out either way.
			return domain.OK(true)
		}
		return domain.Fail[bool](apiErr)
	}
	return domain.OK(true)
}

// Me fetches the authenticated user's profile.
func (s *Service) Me(ctx context.Context) domain.Result[domain.UserProfile] {
	return service.Run(ctx, s.deps, service.Operation[userWire, domain.UserProfile]{
		Name: "auth.me",
		Live: func(ctx context.Context) (userWire, *domain.APIError) {
			var resp userWire
			if apiErr := s.deps.Transport.GetJSON(ctx, "/auth/me", nil, &resp); apiErr != nil {
				return userWire{}, apiErr
			}
			return resp, nil
		},
		Mock: func() userWire { return mockUser },
		Map:  mapUser,
	})
}

// Refresh exchanges the refresh token for a new pair and stores it.
func (s *Service) Refresh(ctx context.Context) domain.Result[domain.UserProfile] {
	if s.deps.Mocked() {
		return s.establish(mockTokenPair())
	}

	refresh := s.deps.Transport.Tokens().RefreshToken()
	if refresh == "" {
		return domain.Fail[domain.UserProfile](domain.ErrAuth("no session to refresh"))
	}

	var resp tokenPairWire
	apiErr := s.deps.Transport.PostJSON(ctx, "/auth/refresh", refreshRequest{RefreshToken: refresh}, &resp)
	if apiErr == nil {
		return s.establish(resp)
	}
	if domain.Fallbackable(apiErr) {
		s.logger().Debug("refresh endpoint unavailable, reissuing substitute session")
		return s.establish(mockTokenPair())
	}
	return domain.Fail[domain.UserProfile](apiErr)
}

// ForgotPassword requests a reset email.
func (s *Service) ForgotPassword(ctx context.Context, email string) domain.Result[bool] {
	return service.Run(ctx, s.deps, service.Operation[bool, bool]{
		Name: "auth.forgot_password",
		Live: func(ctx context.Context) (bool, *domain.APIError) {
			if apiErr := s.deps.Transport.PostJSON(ctx, "/auth/forgot-password", forgotRequest{Email: email}, nil); apiErr != nil {
				return false, apiErr
			}
			return true, nil
		},
		Mock: func() bool { return true },
		Map:  func(ok bool) bool { return ok },
	})
}

// ResetPassword consumes a reset token.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) domain.Result[bool] {
	return service.Run(ctx, s.deps, service.Operation[bool, bool]{
		Name: "auth.reset_password",
		Live: func(ctx context.Context) (bool, *domain.APIError) {
			req := resetRequest{Token: resetToken, NewPassword: newPassword}
			if apiErr := s.deps.Transport.PostJSON(ctx, "/auth/reset-password", req, nil); apiErr != nil {
				return false, apiErr
			}
			return true, nil
		},
		Mock: func() bool { return true },
		Map:  func(ok bool) bool { return ok },
	})
}

func (s *Service) logger() *slog.Logger {
	if s.deps.Logger != nil {
		return s.deps.Logger
	}
	return slog.Default()
}

func mapUser(w userWire) domain.UserProfile {
	return domain.UserProfile{
		ID:     w.ID,
		Nome:   municipios.TitleCase(w.Nome),
		Email:  w.Email,
		Perfil: w.Perfil,
	}
}
