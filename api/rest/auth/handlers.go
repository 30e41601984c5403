package auth

import (
	stderrors "errors"
	"net/http"

	"codeberg.org/examdesk/server/examdesk/users"
	"codeberg.org/examdesk/server/internal/auth"
	"codeberg.org/examdesk/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// single message for both miss branches; never reveal whether the email
// exists or the password was wrong
const invalidCredentialsMessage = "invalid credentials"

// RegisterHandler godoc
// @Summary Register a new account
// @Description Creates a user account. Role defaults to student unless a valid alternative is supplied
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(userRepo users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// only enumerated roles are accepted; anything else stays student
		role := auth.RoleStudent
		if req.Role != "" {
			if parsed, err := auth.ParseRole(req.Role); err == nil {
				role = parsed
			}
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.InternalError(c, "failed to hash password", err)
			return
		}

		user, err := userRepo.Create(c.Request.Context(), req.Name, req.Email, hash, role)
		if err != nil {
			if stderrors.Is(err, users.ErrDuplicateEmail) {
				errors.Conflict(c, "user already exists with this email")
				return
			}

			errors.InternalError(c, "failed to register user", err)
			return
		}

		c.JSON(http.StatusCreated, RegisterResponse{
			Message: "user registered successfully",
			UserID:  user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Role:    user.Role,
		})
	}
}

// LoginHandler godoc
// @Summary Log in with email and password
// @Description Verifies credentials and returns a signed bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(userRepo users.Repository, codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if stderrors.Is(err, users.ErrNotFound) {
				errors.Unauthorized(c, invalidCredentialsMessage)
				return
			}

			errors.InternalError(c, "failed to look up user", err)
			return
		}

		if !auth.CheckPassword(req.Password, user.PasswordHash) {
			errors.Unauthorized(c, invalidCredentialsMessage)
			return
		}

		token, err := codec.Issue(user.ID, user.Email, user.Name, user.Role)
		if err != nil {
			errors.InternalError(c, "failed to issue token", err)
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Message: "login successful",
			Token:   token,
			User:    user,
		})
	}
}

// ProfileHandler godoc
// @Summary Get the authenticated identity
// @Description Echoes the identity claim decoded from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/profile [get]
// @Security BearerAuth
func ProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		c.JSON(http.StatusOK, ProfileResponse{
			Message: "user profile data",
			User:    identityFromClaims(claims),
		})
	}
}

// AdminOnlyHandler godoc
// @Summary Admin-only area
// @Description Available only to identities holding the admin role
// @Tags auth
// @Produce json
// @Success 200 {object} AdminAreaResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/v1/auth/admin-only [get]
// @Security BearerAuth
func AdminOnlyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Forbidden(c, "admin access required")
			return
		}

		c.JSON(http.StatusOK, AdminAreaResponse{
			Message: "welcome, admin",
			Admin:   identityFromClaims(claims),
		})
	}
}

func identityFromClaims(claims *auth.Claims) Identity {
	return Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}
}
