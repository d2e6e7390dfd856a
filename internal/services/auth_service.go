package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"gamereview/internal/apperrors"
	"gamereview/internal/logger"
	"gamereview/internal/models"
	"gamereview/internal/repositories"
)

// invalidCredentials is returned for both unknown usernames and wrong
// passwords so that callers cannot probe for registered usernames.
const invalidCredentials = "invalid username or password"

// AuthService verifies player credentials and issues signed identity tokens.
type AuthService struct {
	playerRepo repositories.PlayerRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
}

// NewAuthService creates a new AuthService. The secret and TTL are
// process-wide configuration, so tokens are verifiable statelessly.
func NewAuthService(playerRepo repositories.PlayerRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		playerRepo: playerRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
	}
}

// Login authenticates a player and returns a signed token plus the player
// record for shaping the response.
func (s *AuthService) Login(username, password string) (string, *models.Player, error) {
	player, err := s.playerRepo.GetByUsername(username)
	if err != nil {
		return "", nil, apperrors.New(apperrors.Unauthorized, invalidCredentials)
	}

	if !player.CheckPassword(password) {
		return "", nil, apperrors.New(apperrors.Unauthorized, invalidCredentials)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"player_id": player.PlayerID,
		"username":  player.Username,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.Internal, err, "failed to sign token for player %d", player.PlayerID)
	}

	return tokenString, player, nil
}

// ValidateToken parses and validates a bearer token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		logger.Log.Debugf("token validation error: %v", err)
		return nil, apperrors.Wrap(apperrors.Unauthorized, err, "invalid or expired token")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.New(apperrors.Unauthorized, "invalid or expired token")
}
