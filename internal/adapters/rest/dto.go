package rest

import (
	"time"

	"listings-service/internal/core/domain"

	"github.com/google/uuid"
)

// LocalizedTextDTO carries all translations of one text field. Empty
// translations are omitted from responses.
type LocalizedTextDTO struct {
	AR string `json:"ar,omitempty"`
	EN string `json:"en,omitempty"`
	TR string `json:"tr,omitempty"`
}

func localizedTextToDTO(t domain.LocalizedText) LocalizedTextDTO {
	return LocalizedTextDTO{AR: t.AR, EN: t.EN, TR: t.TR}
}

func (d LocalizedTextDTO) toDomain() domain.LocalizedText {
	return domain.LocalizedText{AR: d.AR, EN: d.EN, TR: d.TR}
}

// PropertyRequest - body of create and update listing calls.
type PropertyRequest struct {
	Title       LocalizedTextDTO `json:"title"`
	Description LocalizedTextDTO `json:"description"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency"`

	ListingType string `json:"listing_type"`
	Status      string `json:"status"`

	CityID           uuid.UUID `json:"city_id"`
	DistrictID       uuid.UUID `json:"district_id,omitempty"`
	PropertyTypeID   uuid.UUID `json:"property_type_id,omitempty"`
	PropertyLayoutID uuid.UUID `json:"property_layout_id,omitempty"`

	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"`

	Images     []string `json:"images,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (req PropertyRequest) toDomain() *domain.Property {
	return &domain.Property{
		Title:            req.Title.toDomain(),
		Description:      req.Description.toDomain(),
		Price:            req.Price,
		Currency:         req.Currency,
		ListingType:      domain.ListingType(req.ListingType),
		Status:           domain.PropertyStatus(req.Status),
		CityID:           req.CityID,
		DistrictID:       req.DistrictID,
		PropertyTypeID:   req.PropertyTypeID,
		PropertyLayoutID: req.PropertyLayoutID,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		Area:             req.Area,
		Images:           req.Images,
		CoverImage:       req.CoverImage,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}
}

// PropertyResponse - one listing as the API exposes it. DisplayTitle is
// resolved server-side for the request language; the full localized title
// rides along for edit forms.
type PropertyResponse struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`

	DisplayTitle string           `json:"display_title"`
	Title        LocalizedTextDTO `json:"title"`
	Description  LocalizedTextDTO `json:"description"`

	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`

	ListingType string `json:"listing_type"`
	Status      string `json:"status"`

	CityID           uuid.UUID `json:"city_id"`
	DistrictID       uuid.UUID `json:"district_id,omitempty"`
	PropertyTypeID   uuid.UUID `json:"property_type_id,omitempty"`
	PropertyLayoutID uuid.UUID `json:"property_layout_id,omitempty"`

	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"`

	IsFeatured bool     `json:"is_featured"`
	Images     []string `json:"images,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`
	ViewsCount int      `json:"views_count"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func propertyToResponse(p *domain.Property, lang domain.Lang) PropertyResponse {
	return PropertyResponse{
		ID:               p.ID,
		OwnerID:          p.OwnerID,
		DisplayTitle:     p.DisplayTitle(lang),
		Title:            localizedTextToDTO(p.Title),
		Description:      localizedTextToDTO(p.Description),
		Price:            p.Price,
		Currency:         p.Currency,
		ListingType:      string(p.ListingType),
		Status:           string(p.Status),
		CityID:           p.CityID,
		DistrictID:       p.DistrictID,
		PropertyTypeID:   p.PropertyTypeID,
		PropertyLayoutID: p.PropertyLayoutID,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		Area:             p.Area,
		IsFeatured:       p.IsFeatured,
		Images:           p.Images,
		CoverImage:       p.CoverImage,
		ViewsCount:       p.ViewsCount,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// PaginatedPropertiesResponse - paged listing result.
type PaginatedPropertiesResponse struct {
	Properties   []PropertyResponse `json:"properties"`
	TotalCount   int                `json:"total_count"`
	CurrentPage  int                `json:"current_page"`
	ItemsPerPage int                `json:"items_per_page"`
}

func paginatedToResponse(result *domain.PaginatedResult, lang domain.Lang) PaginatedPropertiesResponse {
	properties := make([]PropertyResponse, 0, len(result.Properties))
	for i := range result.Properties {
		properties = append(properties, propertyToResponse(&result.Properties[i], lang))
	}
	return PaginatedPropertiesResponse{
		Properties:   properties,
		TotalCount:   result.TotalCount,
		CurrentPage:  result.CurrentPage,
		ItemsPerPage: result.ItemsPerPage,
	}
}

// OptionResponse - one localized value/label pair for a select control.
type OptionResponse struct {
	Value uuid.UUID `json:"value"`
	Label string    `json:"label"`
}

func optionsToResponse(options []domain.Option) []OptionResponse {
	out := make([]OptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, OptionResponse{Value: o.Value, Label: o.Label})
	}
	return out
}

// PriceBoundsResponse - a derived or selected price interval.
type PriceBoundsResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptionsResponse - everything the search UI needs to re-render its
// controls after a filter change.
type FilterOptionsResponse struct {
	PriceBounds    PriceBoundsResponse `json:"price_bounds"`
	PriceSelection PriceBoundsResponse `json:"price_selection"`
	Districts      []OptionResponse    `json:"districts"`
	Layouts        []OptionResponse    `json:"layouts"`
	Count          int                 `json:"count"`
}

type DictionariesResponse map[string][]OptionResponse

// RegisterRequest - body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest - body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse - issued on successful register or login.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// UserResponse - one account as the back-office sees it.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`

	IsSuspended      bool       `json:"is_suspended"`
	SuspendedUntil   *time.Time `json:"suspended_until,omitempty"`
	SuspensionReason string     `json:"suspension_reason,omitempty"`

	TrialExpiresAt *time.Time `json:"trial_expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             string(u.Role),
		IsSuspended:      u.IsSuspended,
		SuspendedUntil:   u.SuspendedUntil,
		SuspensionReason: u.SuspensionReason,
		TrialExpiresAt:   u.TrialExpiresAt,
		CreatedAt:        u.CreatedAt,
	}
}

// SuspendRequest - body of POST /admin/users/{id}/suspend. A nil Until
// means a permanent suspension.
type SuspendRequest struct {
	Until  *time.Time `json:"until,omitempty"`
	Reason string     `json:"reason"`
}

// ExtendTrialRequest - body of POST /admin/users/{id}/extend-trial.
type ExtendTrialRequest struct {
	Days int `json:"days"`
}

// ChangeRoleRequest - body of PUT /admin/users/{id}/role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// UpdateStatusRequest - body of PUT /admin/properties/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// FeatureRequest - body of PUT /admin/properties/{id}/feature.
type FeatureRequest struct {
	Featured bool `json:"featured"`
}

// SiteSettingsDTO - request and response shape of the settings endpoints.
type SiteSettingsDTO struct {
	SiteName        LocalizedTextDTO `json:"site_name"`
	LogoURL         string           `json:"logo_url,omitempty"`
	ContactEmail    string           `json:"contact_email,omitempty"`
	ContactPhone    string           `json:"contact_phone,omitempty"`
	DefaultLanguage string           `json:"default_language"`
	UpdatedAt       time.Time        `json:"updated_at,omitempty"`
}

func settingsToDTO(s *domain.SiteSettings) SiteSettingsDTO {
	return SiteSettingsDTO{
		SiteName:        localizedTextToDTO(s.SiteName),
		LogoURL:         s.LogoURL,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		DefaultLanguage: string(s.DefaultLanguage),
		UpdatedAt:       s.UpdatedAt,
	}
}

func (d SiteSettingsDTO) toDomain() *domain.SiteSettings {
	return &domain.SiteSettings{
		SiteName:        d.SiteName.toDomain(),
		LogoURL:         d.LogoURL,
		ContactEmail:    d.ContactEmail,
		ContactPhone:    d.ContactPhone,
		DefaultLanguage: domain.Lang(d.DefaultLanguage),
	}
}
