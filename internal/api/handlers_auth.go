package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/services"
	"golang.org/x/crypto/bcrypt"
)

type registerInput struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Phone     string `json:"phone" form:"phone"`
	Password  string `json:"password" form:"password"`
	Role      string `json:"role" form:"role"`
}

type loginInput struct {
	Phone      string `json:"phone" form:"phone"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"rememberMe" form:"rememberMe"`
}

// Register creates a new account. Managers are approved on the spot;
// operators and duty operators wait for a manager. The session cookie
// is issued either way so the client can show the pending screen.
func (handler *Handler) Register(c *fiber.Ctx) error {
	raw := registerInput{}
	if err := c.BodyParser(&raw); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input, err := services.ValidateSignUpInput(services.SignUpInput{
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Phone:     raw.Phone,
		Password:  raw.Password,
		Role:      raw.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrAuthRoleInvalid) {
			return apiError(c, fiber.StatusBadRequest, "unknown role")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if _, exists := handler.store.UserByPhone(input.Phone); exists {
		return apiError(c, fiber.StatusConflict, "phone already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		PasswordHash: string(passwordHash),
		Role:         input.Role,
		IsApproved:   input.Role == models.RoleManager,
		CreatedAt:    handler.now(),
	}
	if err := handler.store.AddUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}
	if err := handler.store.SetCurrentUser(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to open session")
	}

	if err := handler.setAuthCookie(c, user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(sessionPayload(user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	const loginAttemptsLimit = 10
	const loginAttemptsWindow = 15 * time.Minute

	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	phone, password, err := services.NormalizeLoginInput(input.Phone, input.Password)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, found := handler.store.UserByPhone(phone)
	if !found {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.loginLimiter.reset(limiterKey)

	if err := handler.store.SetCurrentUser(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to open session")
	}
	if err := handler.setAuthCookie(c, user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(sessionPayload(user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if err := handler.store.SetCurrentUser(nil); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to close session")
	}
	return apiOK(c)
}

// Session reports who is logged in, re-read from the store so a fresh
// approval shows up without re-login.
func (handler *Handler) Session(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(sessionPayload(user))
}

func sessionPayload(user models.User) fiber.Map {
	return fiber.Map{
		"user":            publicUser(user),
		"approvalPending": !user.IsApproved,
	}
}

// publicUser strips the credential hash from API responses.
func publicUser(user models.User) models.User {
	user.PasswordHash = ""
	return user
}
