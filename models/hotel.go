package models

// HotelOffer is one bookable hotel rate from a search response.
type HotelOffer struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	StarRating         int      `json:"starRating"`
	ReviewScore        float64  `json:"reviewScore,omitempty"`
	ReviewCount        int      `json:"reviewCount,omitempty"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
	Latitude           float64  `json:"latitude,omitempty"`
	Longitude          float64  `json:"longitude,omitempty"`
	MainImage          string   `json:"mainImage,omitempty"`
	Images             []string `json:"images"`
	Thumbnails         []string `json:"thumbnails,omitempty"`
	Amenities          []string `json:"amenities"`
	RoomAmenities      []string `json:"roomAmenities,omitempty"`
	Kind               string   `json:"kind,omitempty"` // hotel, resort, apartment...
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"` // total for the stay
	PricePerNight      float64  `json:"pricePerNight"`
	Currency           Currency `json:"currency"`
	Nights             int      `json:"nights"`
	RoomType           string   `json:"roomType"`
	MealPlan           string   `json:"mealPlan"`
	CancellationPolicy string   `json:"cancellationPolicy,omitempty"`
	FreeCancellation   bool     `json:"freeCancellation"`
}

// HotelDetail is the static property sheet behind an offer.
type HotelDetail struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Address           string             `json:"address"`
	StarRating        int                `json:"star_rating"`
	Latitude          float64            `json:"latitude"`
	Longitude         float64            `json:"longitude"`
	Images            []string           `json:"images"`
	ImagesLarge       []string           `json:"images_large"`
	AmenityGroups     []AmenityGroup     `json:"amenity_groups"`
	DescriptionStruct []DescriptionBlock `json:"description_struct"`
	CheckInTime       string             `json:"check_in_time"`
	CheckOutTime      string             `json:"check_out_time"`
	HotelChain        string             `json:"hotel_chain"`
	Phone             string             `json:"phone"`
	Email             string             `json:"email"`
	PostalCode        string             `json:"postal_code"`
	Kind              string             `json:"kind"`
	RegionName        string             `json:"region_name"`
}

type AmenityGroup struct {
	GroupName string   `json:"group_name"`
	Amenities []string `json:"amenities"`
}

type DescriptionBlock struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}
