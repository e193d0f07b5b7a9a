package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"yatube/internal/middleware"
	"yatube/internal/pkg"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type signupForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type resetRequestForm struct {
	Email string `form:"email" binding:"required,email"`
}

type resetConfirmForm struct {
	Email    string `form:"email" binding:"required,email"`
	Code     string `form:"code" binding:"required,len=6"`
	Password string `form:"password" binding:"required,min=8"`
}

func (h *UserHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (h *UserHandler) Signup(c *gin.Context) {
	var f signupForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{"error": "Проверьте введённые данные."})
		return
	}
	if err := h.svc.Register(f.Username, f.Password, f.Email); err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{"error": "Не удалось создать аккаунт."})
		return
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *UserHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"next": c.Query("next")})
}

func (h *UserHandler) Login(c *gin.Context) {
	var f loginForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Введите имя пользователя и пароль.", "next": c.PostForm("next")})
		return
	}
	token, err := h.svc.Login(f.Username, f.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			c.HTML(http.StatusOK, "login.html", gin.H{"error": "Неверное имя пользователя или пароль.", "next": c.PostForm("next")})
			return
		}
		serverError(c, err)
		return
	}

	maxAge := int(pkg.SessionTTL / time.Second)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *UserHandler) PasswordResetForm(c *gin.Context) {
	c.HTML(http.StatusOK, "password_reset.html", gin.H{})
}

func (h *UserHandler) PasswordReset(c *gin.Context) {
	var f resetRequestForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusOK, "password_reset.html", gin.H{"error": "Введите корректный email."})
		return
	}
	// An unknown address gets the same page, no account probing.
	if err := h.svc.RequestPasswordReset(c.Request.Context(), f.Email); err != nil &&
		!errors.Is(err, service.ErrUserNotFound) {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "password_reset.html", gin.H{"sent": true, "email": f.Email})
}

func (h *UserHandler) PasswordResetConfirmForm(c *gin.Context) {
	c.HTML(http.StatusOK, "password_reset_confirm.html", gin.H{"email": c.Query("email")})
}

func (h *UserHandler) PasswordResetConfirm(c *gin.Context) {
	var f resetConfirmForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusOK, "password_reset_confirm.html", gin.H{"error": "Проверьте введённые данные.", "email": c.PostForm("email")})
		return
	}
	if err := h.svc.ConfirmPasswordReset(c.Request.Context(), f.Email, f.Code, f.Password); err != nil {
		c.HTML(http.StatusOK, "password_reset_confirm.html", gin.H{"error": "Код не подошёл. Попробуйте ещё раз.", "email": f.Email})
		return
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// safeNext keeps the post-login redirect on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
