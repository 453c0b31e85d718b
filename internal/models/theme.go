package models

import "time"

// Theme is a named set of storefront styling attributes.
type Theme struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	IsActive    bool   `json:"isActive" bson:"isActive"`

	PrimaryColor    string `json:"primaryColor" bson:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor" bson:"secondaryColor"`
	AccentColor     string `json:"accentColor" bson:"accentColor"`
	BackgroundColor string `json:"backgroundColor" bson:"backgroundColor"`
	SurfaceColor    string `json:"surfaceColor" bson:"surfaceColor"`
	TextColor       string `json:"textColor" bson:"textColor"`
	MutedTextColor  string `json:"mutedTextColor" bson:"mutedTextColor"`
	BorderColor     string `json:"borderColor" bson:"borderColor"`
	SuccessColor    string `json:"successColor" bson:"successColor"`
	WarningColor    string `json:"warningColor" bson:"warningColor"`
	ErrorColor      string `json:"errorColor" bson:"errorColor"`

	HeaderBackground  string `json:"headerBackground" bson:"headerBackground"`
	HeaderText        string `json:"headerText" bson:"headerText"`
	FooterBackground  string `json:"footerBackground" bson:"footerBackground"`
	FooterText        string `json:"footerText" bson:"footerText"`
	ButtonBackground  string `json:"buttonBackground" bson:"buttonBackground"`
	ButtonText        string `json:"buttonText" bson:"buttonText"`
	ButtonHover       string `json:"buttonHover" bson:"buttonHover"`
	CardBackground    string `json:"cardBackground" bson:"cardBackground"`
	HeroGradient      string `json:"heroGradient" bson:"heroGradient"`
	ButtonGradient    string `json:"buttonGradient" bson:"buttonGradient"`
	AccentGradient    string `json:"accentGradient" bson:"accentGradient"`
	InputBackground   string `json:"inputBackground" bson:"inputBackground"`
	InputBorder       string `json:"inputBorder" bson:"inputBorder"`
	FontFamily        string `json:"fontFamily" bson:"fontFamily"`
	HeadingFontFamily string `json:"headingFontFamily" bson:"headingFontFamily"`
	BorderRadius      string `json:"borderRadius" bson:"borderRadius"`
	ButtonRadius      string `json:"buttonRadius" bson:"buttonRadius"`
	CardRadius        string `json:"cardRadius" bson:"cardRadius"`
	CardShadow        string `json:"cardShadow" bson:"cardShadow"`
	ButtonShadow      string `json:"buttonShadow" bson:"buttonShadow"`
}

// ThemePreference is the single stored record naming the active theme.
type ThemePreference struct {
	Key       string    `json:"-" bson:"_id"`
	ThemeID   string    `json:"themeId" bson:"themeId"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
