package auth

import (
	"context"
	"errors"

	internalmodels "github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"
)

// ErrUnsupportedGrant is returned for authorization code and refresh lookups; only the password grant is served
var ErrUnsupportedGrant = errors.New("grant not supported by this token store")

// GormTokenStore persists issued access tokens in oauth_tokens
type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	issuedAt := info.GetAccessCreateAt()
	token := &internalmodels.OAuthToken{
		ClientID:    info.GetClientID(),
		Subject:     info.GetUserID(),
		AccessToken: info.GetAccess(),
		Scopes:      info.GetScope(),
		IssuedAt:    issuedAt,
		ExpiresAt:   issuedAt.Add(info.GetAccessExpiresIn()),
	}

	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.WithContext(ctx).Where("access_token = ?", access).Delete(&internalmodels.OAuthToken{}).Error
}

func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	var token internalmodels.OAuthToken
	if err := s.db.WithContext(ctx).Where("access_token = ?", access).First(&token).Error; err != nil {
		return nil, err
	}
	return &models.Token{
		ClientID:        token.ClientID,
		UserID:          token.Subject,
		Access:          token.AccessToken,
		AccessCreateAt:  token.IssuedAt,
		AccessExpiresIn: token.ExpiresAt.Sub(token.IssuedAt),
		Scope:           token.Scopes,
	}, nil
}

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return nil
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	return nil, ErrUnsupportedGrant
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return nil
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	return nil, ErrUnsupportedGrant
}
