package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"etatcivil/internal/app/ds"
	"etatcivil/internal/app/dto"
	"etatcivil/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

func generateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *APIHandler) generateJWT(user *ds.User) (string, error) {
	cfg := h.Config.JWT
	token := jwt.NewWithClaims(cfg.SigningMethod, &ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(cfg.ExpiresIn).Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "etatcivil",
			Id:        uuid.NewString(),
		},
		UserID: user.ID,
		Role:   role.Role(user.Role),
	})

	return token.SignedString([]byte(cfg.Token))
}

// RegisterUser godoc
// @Summary Inscription d'un utilisateur
// @Description Crée un compte citoyen. Le rôle demandé est ignoré sauf pour un administrateur authentifié.
// @Tags Authentification
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Inscription"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *APIHandler) RegisterUser(c *gin.Context) {
	var body dto.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	exists, err := h.Repository.UserExistsByLogin(c.Request.Context(), body.Login)
	if err != nil {
		serviceError(c, err)
		return
	}
	if exists {
		errorResponse(c, http.StatusConflict, "ce login est déjà utilisé")
		return
	}

	// Seul un administrateur peut attribuer un rôle élevé
	newRole := role.Citizen
	if body.Role != 0 {
		_, callerRole, ok := getUserFromContext(c)
		if ok && callerRole == role.Admin && role.Role(body.Role).Valid() {
			newRole = role.Role(body.Role)
		}
	}

	user, err := h.Repository.CreateUser(c.Request.Context(),
		body.Login, generateHashString(body.Password), body.FullName, int(newRole))
	if err != nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusCreated, dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Role:     user.Role,
	})
}

// LoginUser godoc
// @Summary Connexion
// @Description Retourne un JWT porteur de l'identité et du rôle
// @Tags Authentification
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Identifiants"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *APIHandler) LoginUser(c *gin.Context) {
	var body dto.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	user, err := h.Repository.UserByLogin(c.Request.Context(), body.Login)
	if err != nil {
		serviceError(c, err)
		return
	}
	if user == nil || user.Password != generateHashString(body.Password) {
		errorResponse(c, http.StatusUnauthorized, "login ou mot de passe incorrect")
		return
	}

	token, err := h.generateJWT(user)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, fmt.Sprintf("cannot generate jwt token: %v", err))
		return
	}

	successResponse(c, http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Login:    user.Login,
			FullName: user.FullName,
			Role:     user.Role,
		},
	})
}

// LogoutUser godoc
// @Summary Déconnexion
// @Description Met le token courant en liste noire jusqu'à son expiration
// @Tags Authentification
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/logout [post]
func (h *APIHandler) LogoutUser(c *gin.Context) {
	jwtStr := c.GetHeader("Authorization")
	if jwtStr == "" {
		errorResponse(c, http.StatusUnauthorized, "token manquant")
		return
	}
	if len(jwtStr) > 7 && jwtStr[:7] == "Bearer " {
		jwtStr = jwtStr[7:]
	}

	_, err := jwt.ParseWithClaims(jwtStr, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "token invalide")
		return
	}

	err = h.RedisClient.WriteJWTToBlacklist(c.Request.Context(), jwtStr, h.Config.JWT.ExpiresIn)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	successResponse(c, http.StatusOK, dto.SuccessResponse{
		Status:  "ok",
		Message: "déconnexion effectuée",
	})
}

// UpdateUserProfile godoc
// @Summary Mettre à jour le profil de l'utilisateur connecté
// @Description Seuls les champs renseignés sont modifiés
// @Tags Authentification
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Champs à modifier"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/profile [put]
func (h *APIHandler) UpdateUserProfile(c *gin.Context) {
	userID, _, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	var body dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, http.StatusBadRequest, "corps de requête invalide: "+err.Error())
		return
	}

	var fullName, password *string
	if body.FullName != "" {
		fullName = &body.FullName
	}
	if body.Password != "" {
		hashed := generateHashString(body.Password)
		password = &hashed
	}

	if err := h.Repository.UpdateUser(c.Request.Context(), userID, fullName, password); err != nil {
		serviceError(c, err)
		return
	}

	user, err := h.Repository.UserByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		serviceError(c, err)
		return
	}

	successResponse(c, http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Role:     user.Role,
	})
}

// GetUserProfile godoc
// @Summary Profil de l'utilisateur connecté
// @Tags Authentification
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/profile [get]
func (h *APIHandler) GetUserProfile(c *gin.Context) {
	userID, _, ok := getUserFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "utilisateur non authentifié")
		return
	}

	user, err := h.Repository.UserByID(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if user == nil {
		errorResponse(c, http.StatusNotFound, "utilisateur introuvable")
		return
	}

	successResponse(c, http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Role:     user.Role,
	})
}
