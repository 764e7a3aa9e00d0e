package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Asset type values.
const (
	AssetBankAccount    = "bank_account"
	AssetRealEstate     = "real_estate"
	AssetCryptocurrency = "cryptocurrency"
	AssetInvestment     = "investment"
	AssetLoan           = "loan"
	AssetOther          = "other"
)

// Asset storage location values.
const (
	StorageLocal       = "local"
	StorageGoogleDrive = "google_drive"
	StorageDigiLocker  = "digilocker"
)

// Asset is a digital or physical asset record owned by a single user.
type Asset struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"user_id" json:"user_id"`
	Type               string             `bson:"type" json:"type"`
	Title              string             `bson:"title" json:"title"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Value              float64            `bson:"value" json:"value"`
	Currency           string             `bson:"currency" json:"currency"`
	InstitutionContact string             `bson:"institution_contact,omitempty" json:"institution_contact,omitempty"`
	Storage            string             `bson:"storage" json:"storage"`
	AccessInstructions string             `bson:"access_instructions,omitempty" json:"access_instructions,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// ValidAssetType reports whether t is one of the enumerated asset types.
func ValidAssetType(t string) bool {
	switch t {
	case AssetBankAccount, AssetRealEstate, AssetCryptocurrency, AssetInvestment, AssetLoan, AssetOther:
		return true
	}
	return false
}

// ValidStorage reports whether s is one of the enumerated storage locations.
func ValidStorage(s string) bool {
	switch s {
	case StorageLocal, StorageGoogleDrive, StorageDigiLocker:
		return true
	}
	return false
}
