package repository

import (
	"errors"
	"time"

	leaddomain "leadscout-backend/internal/lead/domain"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// gmailConnectionRepository implements GmailConnectionRepository interface
type gmailConnectionRepository struct {
	db *gorm.DB
}

// NewGmailConnectionRepository creates a new instance of gmailConnectionRepository
func NewGmailConnectionRepository(db *gorm.DB) GmailConnectionRepository {
	return &gmailConnectionRepository{
		db: db,
	}
}

func (r *gmailConnectionRepository) Get() (*leaddomain.GmailConnection, error) {
	var conn leaddomain.GmailConnection
	err := r.db.Order("created_at DESC").First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

func (r *gmailConnectionRepository) Save(conn *leaddomain.GmailConnection) error {
	if conn.ID == "" {
		conn.ID = uuid.New().String()
	}
	conn.CreatedAt = time.Now()
	conn.UpdatedAt = time.Now()

	// One connection at a time; replace any previous one.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&leaddomain.GmailConnection{}).Error; err != nil {
			return err
		}
		return tx.Create(conn).Error
	})
}

func (r *gmailConnectionRepository) UpdateTokens(token *oauth2.Token) error {
	conn, err := r.Get()
	if err != nil {
		return err
	}
	if conn == nil {
		return errors.New("no gmail connection to update")
	}

	conn.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		conn.RefreshToken = token.RefreshToken
	}
	conn.TokenType = token.TokenType
	conn.ExpiryDate = token.Expiry
	conn.UpdatedAt = time.Now()
	return r.db.Save(conn).Error
}
