package auth

import (
	"context"
	"log"
	"time"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/config"
	"github.com/ipd-emporium/emporium-api/models"
)

// Service owns the identity collaborator (Firebase) and token issuing. It is
// constructed once in main and injected into the route setup, so tests can
// build one without touching Firebase at all.
type Service struct {
	DB       *gorm.DB
	Cfg      config.Config
	Firebase *fbauth.Client
}

func New(db *gorm.DB, cfg config.Config) (*Service, error) {
	s := &Service{DB: db, Cfg: cfg}

	if cfg.FirebaseCredentialsJSON == "" {
		log.Println("⚠️ FIREBASE_CREDENTIALS_JSON not set; Google sign-in disabled")
		return s, nil
	}

	ctx := context.Background()
	opt := option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opt)
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	s.Firebase = client
	return s, nil
}

func (s *Service) signToken(claims jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.Cfg.JWTSecret))
}

// issueAdminToken creates the session row backing an admin JWT. The jti
// claim ties the token to the row so revocation takes effect on the next
// heartbeat, not at token expiry.
func (s *Service) issueAdminToken(email, role string) (string, error) {
	jti := uuid.NewString()
	expires := time.Now().Add(s.Cfg.AdminSessionTTL)

	session := models.AdminSession{
		TokenID:   jti,
		Email:     email,
		ExpiresAt: expires,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return "", err
	}

	return s.signToken(jwt.MapClaims{
		"email": email,
		"role":  role,
		"jti":   jti,
		"exp":   expires.Unix(),
	})
}

func (s *Service) issueUserToken(userID, role string, ttl time.Duration) (string, error) {
	return s.signToken(jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
}
