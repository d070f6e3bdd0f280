package domain

// TransformRequest carries one image transformation job to the provider.
// Exactly one of ImageURL/ImageData is expected; Strength is the
// provider-side transformation scalar in (0, 1].
type TransformRequest struct {
	ImageURL  string  `json:"imageUrl,omitempty"`
	ImageData string  `json:"imageData,omitempty"` // base64-encoded bytes
	Prompt    string  `json:"prompt"`
	Strength  float64 `json:"strength"`
}

// TransformResult is the provider's transformed image, as a URL or inline
// base64 payload depending on the provider's response format.
type TransformResult struct {
	URL       string `json:"url,omitempty"`
	ImageData string `json:"imageData,omitempty"`
	Model     string `json:"model,omitempty"`
}

// RestyleRequest is the full restyle operation input as bound from the
// HTTP layer.
type RestyleRequest struct {
	UserID    string    `json:"userId" binding:"required"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	ImageData string    `json:"imageData,omitempty"`
	Style     string    `json:"style"`
	RoomType  string    `json:"roomType"`
	Intensity Intensity `json:"intensity"`
	KeepItems KeepItems `json:"keepItems"`
}

// RestyleResponse couples the transformed image with the product
// recommendations. The two halves are independent: a provider failure is
// reported in ImageError while recommendations are still populated.
type RestyleResponse struct {
	Image            *TransformResult `json:"image,omitempty"`
	ImageError       string           `json:"imageError,omitempty"`
	Products         []Product        `json:"products"`
	ProductCount     int              `json:"productCount"`
	IntensityInfo    IntensityProfile `json:"intensityInfo"`
	CreditsRemaining int              `json:"creditsRemaining"`
}
