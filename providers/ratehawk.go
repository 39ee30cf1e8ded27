package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"globehunters/config"
	"globehunters/httputil"
	"globehunters/models"
)

// HotelQuery describes one hotel search.
type HotelQuery struct {
	Destination string
	CheckIn     string
	CheckOut    string
	Adults      int
	Children    int
	Rooms       int
	Currency    models.Currency
}

func (q HotelQuery) CacheKey() string {
	return fmt.Sprintf("hotels:%s-%s-%s-%da%dc%dr-%s",
		q.Destination, q.CheckIn, q.CheckOut, q.Adults, q.Children, q.Rooms, q.Currency)
}

// Region is a resolved destination in RateHawk's taxonomy.
type Region struct {
	ID      string
	Name    string
	Country string
}

// RateHawkClient searches hotels through the RateHawk B2B API.
type RateHawkClient struct {
	cfg    config.RateHawkConfig
	client *http.Client
}

func NewRateHawkClient(cfg config.RateHawkConfig, clients *httputil.Clients) *RateHawkClient {
	return &RateHawkClient{cfg: cfg, client: clients.API}
}

func (r *RateHawkClient) Configured() bool {
	return r.cfg.APIKey != ""
}

// authHeader builds RateHawk's basic auth: keyid:key, or key: when no key
// id is issued.
func (r *RateHawkClient) authHeader() string {
	var credentials string
	if r.cfg.KeyID != "" {
		credentials = r.cfg.KeyID + ":" + r.cfg.APIKey
	} else {
		credentials = r.cfg.APIKey + ":"
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

func (r *RateHawkClient) post(ctx context.Context, tag, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return httputil.DoWithRetry(ctx, r.client, tag, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", r.authHeader())
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
}

// SearchRegion resolves a free-text destination to the first city/region
// candidate. A nil region with nil error means nothing matched.
func (r *RateHawkClient) SearchRegion(ctx context.Context, query string) (*Region, error) {
	if !r.Configured() {
		return nil, nil
	}

	resp, err := r.post(ctx, "RegionSearch", "/search/multicomplete/", map[string]any{
		"query":    query,
		"language": "en",
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ratehawk region search: status %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Regions []struct {
				ID      json.Number `json:"id"`
				Name    string      `json:"name"`
				Country string      `json:"country"`
			} `json:"regions"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode regions: %w", err)
	}

	if len(payload.Data.Regions) == 0 {
		log.Printf("[HotelSearch] no region found for %q", query)
		return nil, nil
	}

	first := payload.Data.Regions[0]
	return &Region{ID: first.ID.String(), Name: first.Name, Country: first.Country}, nil
}

type rateHawkRate struct {
	RoomName       string    `json:"room_name"`
	Meal           string    `json:"meal"`
	DailyPrices    []float64 `json:"daily_prices"`
	PaymentOptions struct {
		PaymentTypes []struct {
			Amount                string `json:"amount"`
			CancellationPenalties struct {
				FreeCancellationBefore string `json:"free_cancellation_before"`
			} `json:"cancellation_penalties"`
		} `json:"payment_types"`
	} `json:"payment_options"`
}

type rateHawkHotel struct {
	ID            json.Number    `json:"id"`
	Name          string         `json:"name"`
	StarRating    int            `json:"star_rating"`
	Stars         int            `json:"stars"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	Kind          string         `json:"kind"`
	Images        []json.Number  `json:"images"`
	Rates         []rateHawkRate `json:"rates"`
	AmenityGroups []struct {
		Amenities []string `json:"amenities"`
	} `json:"amenity_groups"`
	DescriptionStruct []struct {
		Paragraphs []string `json:"paragraphs"`
	} `json:"description_struct"`
}

// SearchHotels searches a resolved region and transforms the hotel list.
// Hotels without a price are dropped; the result is price-ascending.
func (r *RateHawkClient) SearchHotels(ctx context.Context, region *Region, q HotelQuery) ([]models.HotelOffer, error) {
	if !r.Configured() {
		return nil, nil
	}

	regionID, err := strconv.Atoi(region.ID)
	if err != nil {
		return nil, fmt.Errorf("bad region id %q: %w", region.ID, err)
	}

	// Guests are distributed evenly across rooms; RateHawk wants one
	// entry per room.
	rooms := q.Rooms
	if rooms < 1 {
		rooms = 1
	}
	adultsPerRoom := (q.Adults + rooms - 1) / rooms
	guests := make([]map[string]any, rooms)
	for i := range guests {
		guests[i] = map[string]any{"adults": adultsPerRoom, "children": []int{}}
	}

	resp, err := r.post(ctx, "HotelSearch", "/search/hp/", map[string]any{
		"checkin":   q.CheckIn,
		"checkout":  q.CheckOut,
		"residency": "gb",
		"language":  "en",
		"guests":    guests,
		"region_id": regionID,
		"currency":  strings.ToLower(string(q.Currency)),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ratehawk hotel search: status %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Hotels []rateHawkHotel `json:"hotels"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode hotels: %w", err)
	}

	nights := Nights(q.CheckIn, q.CheckOut)
	hotels := make([]models.HotelOffer, 0, len(payload.Data.Hotels))

	for _, h := range payload.Data.Hotels {
		offer, ok := transformHotel(h, region, q.Currency, nights)
		if ok {
			hotels = append(hotels, offer)
		}
	}

	sort.SliceStable(hotels, func(i, j int) bool {
		return hotels[i].Price < hotels[j].Price
	})

	log.Printf("[HotelSearch] %d priced hotels for region %s", len(hotels), region.ID)
	return hotels, nil
}

func transformHotel(h rateHawkHotel, region *Region, currency models.Currency, nights int) (models.HotelOffer, bool) {
	var cheapest *rateHawkRate
	if len(h.Rates) > 0 {
		cheapest = &h.Rates[0]
	}

	total := ratePrice(cheapest)
	if total <= 0 {
		return models.HotelOffer{}, false
	}

	stars := h.StarRating
	if stars == 0 {
		stars = h.Stars
	}

	perNight := total
	if nights > 0 {
		perNight = math.Round(total / float64(nights))
	}

	images := make([]string, 0, 10)
	thumbs := make([]string, 0, 5)
	for i, id := range h.Images {
		if i < 10 {
			images = append(images, hotelImageURL(id.String(), "800/520"))
		}
		if i < 5 {
			thumbs = append(thumbs, hotelImageURL(id.String(), "240/240"))
		}
	}
	mainImage := ""
	if len(images) > 0 {
		mainImage = images[0]
	}

	var amenityCodes []string
	for _, g := range h.AmenityGroups {
		amenityCodes = append(amenityCodes, g.Amenities...)
	}

	var description string
	for _, block := range h.DescriptionStruct {
		for _, p := range block.Paragraphs {
			if description != "" {
				description += " "
			}
			description += p
		}
	}

	roomType := "Standard Room"
	mealPlan := "Room Only"
	cancellationPolicy := "Non-refundable"
	freeCancellation := false
	if cheapest != nil {
		if cheapest.RoomName != "" {
			roomType = cheapest.RoomName
		}
		mealPlan = mapMealPlan(cheapest.Meal)
		if len(cheapest.PaymentOptions.PaymentTypes) > 0 {
			if before := cheapest.PaymentOptions.PaymentTypes[0].CancellationPenalties.FreeCancellationBefore; before != "" {
				freeCancellation = true
				cancellationPolicy = "Free cancellation until " + before
			}
		}
	}

	return models.HotelOffer{
		ID:                 h.ID.String(),
		Name:               nonEmpty(h.Name, "Hotel"),
		StarRating:         stars,
		Address:            h.Address,
		City:               region.Name,
		Country:            region.Country,
		Latitude:           h.Latitude,
		Longitude:          h.Longitude,
		MainImage:          mainImage,
		Images:             images,
		Thumbnails:         thumbs,
		Amenities:          mapAmenities(amenityCodes),
		Kind:               h.Kind,
		Description:        description,
		Price:              total,
		PricePerNight:      perNight,
		Currency:           currency,
		Nights:             nights,
		RoomType:           roomType,
		MealPlan:           mealPlan,
		CancellationPolicy: cancellationPolicy,
		FreeCancellation:   freeCancellation,
	}, true
}

func ratePrice(rate *rateHawkRate) float64 {
	if rate == nil {
		return 0
	}
	if len(rate.PaymentOptions.PaymentTypes) > 0 {
		if amount, err := strconv.ParseFloat(rate.PaymentOptions.PaymentTypes[0].Amount, 64); err == nil && amount > 0 {
			return amount
		}
	}
	var sum float64
	for _, p := range rate.DailyPrices {
		sum += p
	}
	return sum
}

// GetHotelDetail fetches the static property sheet for one hotel.
func (r *RateHawkClient) GetHotelDetail(ctx context.Context, hotelID string) (*models.HotelDetail, error) {
	if !r.Configured() {
		return nil, fmt.Errorf("hotel detail service unavailable")
	}

	resp, err := r.post(ctx, "HotelDetail", "/hotel/info/", map[string]any{
		"id":       hotelID,
		"language": "en",
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ratehawk hotel info: status %d", resp.StatusCode)
	}

	var payload struct {
		Status string `json:"status"`
		Data   *struct {
			Name       string   `json:"name"`
			Address    string   `json:"address"`
			StarRating int      `json:"star_rating"`
			Latitude   float64  `json:"latitude"`
			Longitude  float64  `json:"longitude"`
			Images     []string `json:"images"`
			ImagesExt  []struct {
				URL string `json:"url"`
			} `json:"images_ext"`
			AmenityGroups []struct {
				GroupName string   `json:"group_name"`
				Amenities []string `json:"amenities"`
			} `json:"amenity_groups"`
			DescriptionStruct []struct {
				Title      string   `json:"title"`
				Paragraphs []string `json:"paragraphs"`
			} `json:"description_struct"`
			CheckInTime  string `json:"check_in_time"`
			CheckOutTime string `json:"check_out_time"`
			HotelChain   string `json:"hotel_chain"`
			Phone        string `json:"phone"`
			Email        string `json:"email"`
			PostalCode   string `json:"postal_code"`
			Kind         string `json:"kind"`
			Region       struct {
				Name string `json:"name"`
			} `json:"region"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode hotel info: %w", err)
	}
	if payload.Status == "error" || payload.Data == nil {
		return nil, nil
	}

	h := payload.Data

	// RateHawk image URLs carry a {size} placeholder.
	var images, imagesLarge []string
	for _, img := range h.Images {
		images = append(images, replaceSize(img, "640x400"))
		imagesLarge = append(imagesLarge, replaceSize(img, "1024x768"))
	}
	if len(images) == 0 {
		for _, img := range h.ImagesExt {
			if img.URL != "" {
				images = append(images, replaceSize(img.URL, "640x400"))
				imagesLarge = append(imagesLarge, replaceSize(img.URL, "1024x768"))
			}
		}
	}

	detail := &models.HotelDetail{
		ID:           hotelID,
		Name:         nonEmpty(h.Name, "Hotel"),
		Address:      h.Address,
		StarRating:   h.StarRating,
		Latitude:     h.Latitude,
		Longitude:    h.Longitude,
		Images:       images,
		ImagesLarge:  imagesLarge,
		CheckInTime:  h.CheckInTime,
		CheckOutTime: h.CheckOutTime,
		HotelChain:   h.HotelChain,
		Phone:        h.Phone,
		Email:        h.Email,
		PostalCode:   h.PostalCode,
		Kind:         h.Kind,
		RegionName:   h.Region.Name,
	}
	for _, g := range h.AmenityGroups {
		detail.AmenityGroups = append(detail.AmenityGroups, models.AmenityGroup{
			GroupName: nonEmpty(g.GroupName, "Other"),
			Amenities: g.Amenities,
		})
	}
	for _, d := range h.DescriptionStruct {
		detail.DescriptionStruct = append(detail.DescriptionStruct, models.DescriptionBlock{
			Title:      d.Title,
			Paragraphs: d.Paragraphs,
		})
	}

	return detail, nil
}

// amenityNames maps RateHawk amenity codes to display labels. Unknown
// codes are dropped.
var amenityNames = map[string]string{
	"has_wifi":             "Free WiFi",
	"wifi":                 "Free WiFi",
	"internet":             "Internet",
	"parking":              "Parking",
	"has_parking":          "Parking",
	"pool":                 "Swimming Pool",
	"has_pool":             "Swimming Pool",
	"gym":                  "Fitness Center",
	"fitness":              "Fitness Center",
	"has_fitness":          "Fitness Center",
	"spa":                  "Spa & Wellness",
	"has_spa":              "Spa & Wellness",
	"restaurant":           "Restaurant",
	"has_restaurant":       "Restaurant",
	"bar":                  "Bar/Lounge",
	"room_service":         "Room Service",
	"breakfast":            "Breakfast Available",
	"has_breakfast":        "Breakfast",
	"air_conditioning":     "Air Conditioning",
	"has_air_conditioning": "Air Conditioning",
	"laundry":              "Laundry Service",
	"concierge":            "Concierge",
	"business_center":      "Business Center",
	"has_business_center":  "Business Center",
	"meeting_rooms":        "Meeting Rooms",
	"pet_friendly":         "Pet Friendly",
	"has_pets":             "Pet Friendly",
	"kids_friendly":        "Family Friendly",
	"beach":                "Beach Access",
	"has_beach":            "Beach Access",
	"airport_shuttle":      "Airport Shuttle",
	"has_airport_shuttle":  "Airport Shuttle",
	"24_hour_front_desk":   "24-Hour Front Desk",
}

func mapAmenities(codes []string) []string {
	out := make([]string, 0, 8)
	for _, code := range codes {
		if name, ok := amenityNames[strings.ToLower(code)]; ok {
			out = append(out, name)
			if len(out) == 8 {
				break
			}
		}
	}
	return out
}

var mealPlans = map[string]string{
	"nomeal":       "Room Only",
	"breakfast":    "Breakfast Included",
	"halfboard":    "Half Board",
	"fullboard":    "Full Board",
	"allinclusive": "All Inclusive",
}

func mapMealPlan(meal string) string {
	if meal == "" {
		return "Room Only"
	}
	if plan, ok := mealPlans[meal]; ok {
		return plan
	}
	return meal
}

func hotelImageURL(imageID, size string) string {
	return fmt.Sprintf("https://photos.hotellook.com/image_v2/limit/%s/%s.auto", imageID, size)
}

func replaceSize(url, size string) string {
	return strings.ReplaceAll(url, "{size}", size)
}

// Nights counts whole nights between two YYYY-MM-DD dates, zero when
// either date fails to parse.
func Nights(checkIn, checkOut string) int {
	start, err1 := time.Parse("2006-01-02", checkIn)
	end, err2 := time.Parse("2006-01-02", checkOut)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
