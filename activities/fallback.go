package activities

import (
	"fmt"
	"net/url"
	"strings"

	"globehunters/models"
)

// curatedActivity is one hand-picked entry shown when the live scrape
// fails. Prices are in GBP.
type curatedActivity struct {
	Title    string
	Desc     string
	Price    float64
	Duration string
	Rating   float64
	Reviews  int
	Category string
	Image    string
}

// fallbackActivities returns the curated set for a destination, matched by
// lowercase substring so "Dubai, UAE" still hits the "dubai" table. Unknown
// destinations get a generic set templated on the destination name.
func fallbackActivities(destination string, currency models.Currency, limit int) []models.Activity {
	destLower := strings.ToLower(destination)

	curated := genericFallback(destination)
	for key, data := range curatedFallbacks {
		if strings.Contains(destLower, key) {
			curated = data
			break
		}
	}

	if limit > len(curated) {
		limit = len(curated)
	}

	searchPath := "/search/?query=" + url.QueryEscape(destination)
	out := make([]models.Activity, 0, limit)
	for i, c := range curated[:limit] {
		price := convertScraped(c.Price, "GBP", currency)
		out = append(out, models.Activity{
			ID:               fmt.Sprintf("klook-fallback-%s-%d", destLower, i),
			Provider:         "klook",
			ProviderCode:     fmt.Sprintf("klook-%s-%d", destLower, i),
			Title:            cleanTitle(c.Title),
			Description:      c.Desc,
			ShortDescription: c.Desc,
			Images:           []models.ActivityImage{{URL: c.Image, Caption: c.Title}},
			Duration:         c.Duration,
			Price:            models.Money{Amount: price, Currency: currency},
			PricePerPerson:   models.Money{Amount: price, Currency: currency},
			Rating:           c.Rating,
			ReviewCount:      c.Reviews,
			Categories:       []string{c.Category},
			BookingURL:       affiliateURL(searchPath),
		})
	}
	return out
}

func genericFallback(destination string) []curatedActivity {
	return []curatedActivity{
		{Title: destination + " City Highlights Tour", Desc: "Discover the main attractions and landmarks of " + destination + " with an expert local guide.", Price: 55, Duration: "4 hours", Rating: 4.6, Reviews: 2500, Category: "Tours", Image: "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=800&q=80"},
		{Title: destination + " Food and Culture Experience", Desc: "Taste authentic local cuisine and learn about the culture and traditions.", Price: 65, Duration: "3 hours", Rating: 4.7, Reviews: 1800, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&q=80"},
		{Title: destination + " Hidden Gems Walking Tour", Desc: "Explore off-the-beaten-path locations with a knowledgeable local guide.", Price: 45, Duration: "3 hours", Rating: 4.8, Reviews: 1200, Category: "Tours", Image: "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?w=800&q=80"},
		{Title: destination + " Day Trip Adventure", Desc: "Full-day excursion to the most scenic spots around " + destination + ".", Price: 85, Duration: "Full day", Rating: 4.5, Reviews: 980, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=800&q=80"},
		{Title: destination + " Sunset Experience", Desc: "Enjoy spectacular sunset views at the best vantage point in " + destination + ".", Price: 40, Duration: "2 hours", Rating: 4.6, Reviews: 1500, Category: "Tours", Image: "https://images.unsplash.com/photo-1495616811223-4d98c6e9c869?w=800&q=80"},
		{Title: destination + " Local Market Tour", Desc: "Immerse yourself in local life at traditional markets with a guide.", Price: 35, Duration: "2.5 hours", Rating: 4.7, Reviews: 890, Category: "Cultural", Image: "https://images.unsplash.com/photo-1555529669-2269763671c0?w=800&q=80"},
		{Title: destination + " Photography Tour", Desc: "Capture the best shots of " + destination + " with a professional photographer guide.", Price: 75, Duration: "3 hours", Rating: 4.8, Reviews: 650, Category: "Tours", Image: "https://images.unsplash.com/photo-1452421822248-d4c2b47f0c81?w=800&q=80"},
		{Title: destination + " Evening Entertainment", Desc: "Experience the best nightlife and entertainment " + destination + " has to offer.", Price: 60, Duration: "3 hours", Rating: 4.4, Reviews: 720, Category: "Entertainment", Image: "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=800&q=80"},
	}
}

var curatedFallbacks = map[string][]curatedActivity{
	"london": {
		{Title: "Tower of London & Crown Jewels Tour", Desc: "Explore 1000 years of royal history and see the dazzling Crown Jewels.", Price: 45, Duration: "3 hours", Rating: 4.8, Reviews: 15200, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1596402184320-417e7178b2cd?w=800&q=80"},
		{Title: "British Museum Guided Tour", Desc: "Discover world treasures including the Rosetta Stone with an expert guide.", Price: 35, Duration: "2.5 hours", Rating: 4.7, Reviews: 8900, Category: "Museums", Image: "https://images.unsplash.com/photo-1590099033615-be195f8d575c?w=800&q=80"},
		{Title: "Harry Potter Warner Bros Studio Tour", Desc: "Step into the magical world of Harry Potter at the original film studios.", Price: 95, Duration: "4 hours", Rating: 4.9, Reviews: 22000, Category: "Entertainment", Image: "https://images.unsplash.com/photo-1551269901-5c5e14c25df7?w=800&q=80"},
		{Title: "Thames River Cruise with Afternoon Tea", Desc: "Cruise past iconic landmarks while enjoying traditional afternoon tea.", Price: 55, Duration: "1.5 hours", Rating: 4.6, Reviews: 4500, Category: "Cruises", Image: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&q=80"},
		{Title: "Westminster Abbey & Changing of the Guard", Desc: "See the Changing of the Guard and explore historic Westminster Abbey.", Price: 25, Duration: "3 hours", Rating: 4.5, Reviews: 6200, Category: "Tours", Image: "https://images.unsplash.com/photo-1529655683826-aba9b3e77383?w=800&q=80"},
		{Title: "Stonehenge & Bath Day Trip", Desc: "Visit the mysterious Stonehenge and beautiful Georgian city of Bath.", Price: 89, Duration: "Full day", Rating: 4.7, Reviews: 9800, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1599833975787-5c143f373c30?w=800&q=80"},
		{Title: "Jack the Ripper Walking Tour", Desc: "Explore the dark streets of Whitechapel on this thrilling evening tour.", Price: 18, Duration: "2 hours", Rating: 4.6, Reviews: 5100, Category: "Tours", Image: "https://images.unsplash.com/photo-1520986606214-8b456906c813?w=800&q=80"},
		{Title: "London Eye Skip-the-Line Ticket", Desc: "Soar above London for 360-degree views from the iconic observation wheel.", Price: 35, Duration: "30 minutes", Rating: 4.5, Reviews: 18000, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1486299267070-83823f5448dd?w=800&q=80"},
	},
	"paris": {
		{Title: "Eiffel Tower Summit Access with Skip-the-Line", Desc: "Skip the long queues and ascend to the summit of the iconic Eiffel Tower for breathtaking views of Paris.", Price: 75, Duration: "2-3 hours", Rating: 4.7, Reviews: 12500, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1511739001486-6bfe10ce65f4?w=800&q=80"},
		{Title: "Louvre Museum Guided Tour with Skip-the-Line", Desc: "Discover masterpieces including the Mona Lisa with an expert guide at the world's largest art museum.", Price: 65, Duration: "3 hours", Rating: 4.8, Reviews: 8900, Category: "Museums", Image: "https://images.unsplash.com/photo-1499426600726-7f7f1b6d2d70?w=800&q=80"},
		{Title: "Seine River Cruise with Dinner", Desc: "Enjoy a romantic dinner cruise along the Seine, passing illuminated monuments of Paris.", Price: 95, Duration: "2.5 hours", Rating: 4.6, Reviews: 5600, Category: "Cruises", Image: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800&q=80"},
		{Title: "Versailles Palace Day Trip from Paris", Desc: "Explore the opulent Palace of Versailles and its stunning gardens on a guided day trip.", Price: 89, Duration: "Full day", Rating: 4.7, Reviews: 7200, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1551410224-699683e15636?w=800&q=80"},
		{Title: "Montmartre Walking Tour with Wine Tasting", Desc: "Discover the artistic heart of Paris in Montmartre with a local guide and French wine tasting.", Price: 55, Duration: "3 hours", Rating: 4.9, Reviews: 3400, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1550340499-a6c60fc8287c?w=800&q=80"},
		{Title: "Paris Catacombs Skip-the-Line Tour", Desc: "Explore the mysterious underground tunnels housing millions of Parisians from centuries past.", Price: 45, Duration: "2 hours", Rating: 4.5, Reviews: 4100, Category: "Tours", Image: "https://images.unsplash.com/photo-1604154737395-ff16a4f45b14?w=800&q=80"},
		{Title: "Moulin Rouge Show with Champagne", Desc: "Experience the world-famous cabaret show at Moulin Rouge with a glass of champagne.", Price: 115, Duration: "2.5 hours", Rating: 4.6, Reviews: 6800, Category: "Entertainment", Image: "https://images.unsplash.com/photo-1549456404-20e0ad7a7e17?w=800&q=80"},
		{Title: "Paris Food Tour: Cheese, Chocolate & Wine", Desc: "Taste your way through Paris sampling the best cheese, chocolate, and wine with a local expert.", Price: 85, Duration: "3.5 hours", Rating: 4.9, Reviews: 2900, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1486427944544-d2c6128c5432?w=800&q=80"},
	},
	"dubai": {
		{Title: "Burj Khalifa At The Top Observation Deck", Desc: "Visit the observation deck of the world's tallest building for panoramic views of Dubai.", Price: 55, Duration: "1-2 hours", Rating: 4.8, Reviews: 15000, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&q=80"},
		{Title: "Desert Safari with BBQ Dinner", Desc: "Experience dune bashing, camel rides, and a traditional BBQ dinner under the stars.", Price: 75, Duration: "6 hours", Rating: 4.7, Reviews: 12000, Category: "Adventure", Image: "https://images.unsplash.com/photo-1451337516015-6b6e9a44a8a3?w=800&q=80"},
		{Title: "Dubai Marina Luxury Yacht Cruise", Desc: "Cruise along Dubai Marina on a luxury yacht with stunning skyline views.", Price: 95, Duration: "2-3 hours", Rating: 4.6, Reviews: 4500, Category: "Cruises", Image: "https://images.unsplash.com/photo-1518684079-3c830dcef090?w=800&q=80"},
		{Title: "Aquaventure Waterpark Admission", Desc: "Enjoy thrilling water slides and marine encounters at Atlantis The Palm's waterpark.", Price: 85, Duration: "Full day", Rating: 4.7, Reviews: 8900, Category: "Theme Parks", Image: "https://images.unsplash.com/photo-1582719508461-905c673771fd?w=800&q=80"},
		{Title: "Dubai Frame Entrance Ticket", Desc: "Step inside the iconic Dubai Frame for unique views of old and new Dubai.", Price: 25, Duration: "1 hour", Rating: 4.5, Reviews: 6200, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1597659840241-37e2b9c2f55f?w=800&q=80"},
		{Title: "Old Dubai Walking Tour with Abra Ride", Desc: "Explore the historic districts of Al Fahidi and Deira with a traditional abra boat crossing.", Price: 45, Duration: "3 hours", Rating: 4.8, Reviews: 3100, Category: "Tours", Image: "https://images.unsplash.com/photo-1580674684081-7617fbf3d745?w=800&q=80"},
		{Title: "Dhow Dinner Cruise Dubai Creek", Desc: "Enjoy a buffet dinner aboard a traditional dhow boat cruising Dubai Creek.", Price: 65, Duration: "2 hours", Rating: 4.4, Reviews: 5400, Category: "Cruises", Image: "https://images.unsplash.com/photo-1512632578888-169bbbc64f33?w=800&q=80"},
		{Title: "Abu Dhabi Day Trip from Dubai", Desc: "Visit Abu Dhabi's highlights including Sheikh Zayed Mosque and Emirates Palace.", Price: 75, Duration: "10 hours", Rating: 4.6, Reviews: 4800, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1548430395-ec39eaf2aa1a?w=800&q=80"},
	},
	"bangkok": {
		{Title: "Grand Palace and Wat Pho Walking Tour", Desc: "Explore Thailand's most sacred landmarks with an expert guide.", Price: 45, Duration: "4 hours", Rating: 4.7, Reviews: 9800, Category: "Cultural", Image: "https://images.unsplash.com/photo-1563492065599-3520f775eeed?w=800&q=80"},
		{Title: "Floating Market and Railway Market Tour", Desc: "Visit the famous Damnoen Saduak floating market and Maeklong railway market.", Price: 55, Duration: "7 hours", Rating: 4.6, Reviews: 7200, Category: "Tours", Image: "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a?w=800&q=80"},
		{Title: "Thai Cooking Class with Market Tour", Desc: "Learn to cook authentic Thai dishes after visiting a local market.", Price: 65, Duration: "4 hours", Rating: 4.9, Reviews: 5100, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1562565652-a0d8f0c59eb4?w=800&q=80"},
		{Title: "Ayutthaya Ancient City Day Trip", Desc: "Explore the UNESCO World Heritage ruins of Thailand's ancient capital.", Price: 65, Duration: "Full day", Rating: 4.7, Reviews: 6400, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1569154941061-e231b4725ef1?w=800&q=80"},
		{Title: "Chao Phraya Dinner Cruise", Desc: "Enjoy Thai cuisine while cruising past illuminated temples and palaces.", Price: 55, Duration: "2.5 hours", Rating: 4.5, Reviews: 4200, Category: "Cruises", Image: "https://images.unsplash.com/photo-1559592413-7cec4d0cae2b?w=800&q=80"},
		{Title: "Muay Thai Boxing Show", Desc: "Watch authentic Thai boxing at Rajadamnern Stadium with ringside seats.", Price: 45, Duration: "3 hours", Rating: 4.4, Reviews: 2800, Category: "Entertainment", Image: "https://images.unsplash.com/photo-1584466977773-e625c37cdd50?w=800&q=80"},
		{Title: "Bangkok Street Food Night Tour", Desc: "Taste your way through Bangkok's best street food with a local guide.", Price: 50, Duration: "4 hours", Rating: 4.8, Reviews: 3600, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=800&q=80"},
		{Title: "Temple and Canal Long-tail Boat Tour", Desc: "Discover hidden temples and local life along Bangkok's historic canals.", Price: 40, Duration: "3 hours", Rating: 4.6, Reviews: 2900, Category: "Tours", Image: "https://images.unsplash.com/photo-1528181304800-259b08848526?w=800&q=80"},
	},
	"bali": {
		{Title: "Ubud Rice Terrace and Temple Tour", Desc: "Visit the stunning Tegallalang rice terraces and ancient temples around Ubud.", Price: 45, Duration: "8 hours", Rating: 4.7, Reviews: 8500, Category: "Tours", Image: "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800&q=80"},
		{Title: "Mount Batur Sunrise Trek with Breakfast", Desc: "Hike an active volcano at dawn for spectacular sunrise views and breakfast.", Price: 55, Duration: "10 hours", Rating: 4.8, Reviews: 6200, Category: "Adventure", Image: "https://images.unsplash.com/photo-1544550581-5f7ceaf7f992?w=800&q=80"},
		{Title: "Balinese Cooking Class in Ubud", Desc: "Learn traditional Balinese recipes in a beautiful garden setting.", Price: 40, Duration: "4 hours", Rating: 4.9, Reviews: 4100, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=800&q=80"},
		{Title: "Nusa Penida Island Day Trip", Desc: "Explore dramatic cliffs, pristine beaches and Crystal Bay snorkeling.", Price: 75, Duration: "Full day", Rating: 4.6, Reviews: 5800, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1570789210967-2cac24f04c51?w=800&q=80"},
		{Title: "Balinese Spa and Wellness Retreat", Desc: "Indulge in traditional Balinese massage and flower bath treatment.", Price: 50, Duration: "3 hours", Rating: 4.8, Reviews: 3200, Category: "Wellness", Image: "https://images.unsplash.com/photo-1544161515-4ab6ce6db874?w=800&q=80"},
		{Title: "Uluwatu Temple and Kecak Fire Dance", Desc: "Watch the mesmerizing Kecak fire dance at clifftop Uluwatu Temple.", Price: 35, Duration: "5 hours", Rating: 4.7, Reviews: 4500, Category: "Cultural", Image: "https://images.unsplash.com/photo-1555400038-63f5ba517a47?w=800&q=80"},
		{Title: "White Water Rafting on Ayung River", Desc: "Navigate exciting rapids through stunning jungle scenery.", Price: 45, Duration: "5 hours", Rating: 4.6, Reviews: 3800, Category: "Adventure", Image: "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=800&q=80"},
		{Title: "Tanah Lot Sunset Tour", Desc: "Visit Bali's most iconic sea temple during golden hour.", Price: 30, Duration: "4 hours", Rating: 4.5, Reviews: 2900, Category: "Tours", Image: "https://images.unsplash.com/photo-1518548419970-58e3b4079ab2?w=800&q=80"},
	},
	"maldives": {
		{Title: "Sunset Dolphin Cruise", Desc: "Spot dolphins in their natural habitat during a magical sunset cruise.", Price: 85, Duration: "2 hours", Rating: 4.8, Reviews: 3200, Category: "Wildlife", Image: "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=800&q=80"},
		{Title: "Snorkeling Safari to Multiple Reefs", Desc: "Explore vibrant coral reefs and tropical marine life at multiple sites.", Price: 75, Duration: "4 hours", Rating: 4.7, Reviews: 2800, Category: "Water Sports", Image: "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&q=80"},
		{Title: "Private Sandbank Picnic Experience", Desc: "Escape to a secluded sandbank for a romantic gourmet picnic.", Price: 195, Duration: "4 hours", Rating: 4.9, Reviews: 1800, Category: "Romantic", Image: "https://images.unsplash.com/photo-1573843981267-be1999ff37cd?w=800&q=80"},
		{Title: "Scuba Diving Introduction Course", Desc: "Discover the underwater world with certified PADI instructors.", Price: 125, Duration: "4 hours", Rating: 4.8, Reviews: 2100, Category: "Water Sports", Image: "https://images.unsplash.com/photo-1682687220742-aba13b6e50ba?w=800&q=80"},
		{Title: "Night Fishing Traditional Experience", Desc: "Try traditional Maldivian line fishing under the starlit sky.", Price: 75, Duration: "3 hours", Rating: 4.5, Reviews: 1500, Category: "Adventure", Image: "https://images.unsplash.com/photo-1590523741831-ab7e8b8f9c7f?w=800&q=80"},
		{Title: "Male City and Island Hopping Tour", Desc: "Explore the capital Male and nearby local islands.", Price: 95, Duration: "Full day", Rating: 4.4, Reviews: 1200, Category: "Tours", Image: "https://images.unsplash.com/photo-1512100356356-de1b84283e18?w=800&q=80"},
		{Title: "Luxury Spa Overwater Treatment", Desc: "Indulge in a rejuvenating spa experience in an overwater pavilion.", Price: 150, Duration: "2 hours", Rating: 4.9, Reviews: 980, Category: "Wellness", Image: "https://images.unsplash.com/photo-1540555700478-4be289fbecef?w=800&q=80"},
		{Title: "Submarine Underwater Adventure", Desc: "Explore the ocean depths in a real submarine without getting wet.", Price: 145, Duration: "1.5 hours", Rating: 4.6, Reviews: 890, Category: "Adventure", Image: "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&q=80"},
	},
	"barcelona": {
		{Title: "Sagrada Familia Skip-the-Line Tour", Desc: "Marvel at Gaudi's masterpiece basilica with priority access and expert guide.", Price: 55, Duration: "1.5 hours", Rating: 4.9, Reviews: 18500, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=800&q=80"},
		{Title: "Park Guell Guided Tour", Desc: "Explore Gaudi's whimsical park with its colorful mosaics and city views.", Price: 35, Duration: "1.5 hours", Rating: 4.7, Reviews: 9200, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1511527661048-7fe73d85e9a4?w=800&q=80"},
		{Title: "Gothic Quarter Walking Tour", Desc: "Discover medieval Barcelona's hidden squares, Roman ruins and local legends.", Price: 25, Duration: "2.5 hours", Rating: 4.8, Reviews: 6800, Category: "Tours", Image: "https://images.unsplash.com/photo-1464790719320-516ecd75af6c?w=800&q=80"},
		{Title: "Tapas and Wine Evening Tour", Desc: "Sample authentic Spanish tapas and local wines at hidden local bars.", Price: 75, Duration: "3 hours", Rating: 4.8, Reviews: 5400, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1515443961218-a51367888e4b?w=800&q=80"},
		{Title: "Montserrat Half-Day Trip", Desc: "Visit the sacred mountain monastery and enjoy stunning views.", Price: 55, Duration: "5 hours", Rating: 4.7, Reviews: 7100, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1561632669-7f55f7975606?w=800&q=80"},
		{Title: "Camp Nou Stadium Tour", Desc: "Go behind the scenes at FC Barcelona's legendary home stadium.", Price: 30, Duration: "1.5 hours", Rating: 4.6, Reviews: 11000, Category: "Tours", Image: "https://images.unsplash.com/photo-1522778119026-d647f0596c20?w=800&q=80"},
		{Title: "Flamenco Show with Dinner", Desc: "Experience passionate flamenco dancing with traditional Spanish dinner.", Price: 65, Duration: "2 hours", Rating: 4.5, Reviews: 4200, Category: "Entertainment", Image: "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=800&q=80"},
		{Title: "Barcelona Sailing Experience", Desc: "Sail along the Mediterranean coast with stunning city skyline views.", Price: 85, Duration: "2 hours", Rating: 4.7, Reviews: 3100, Category: "Adventure", Image: "https://images.unsplash.com/photo-1509070016581-915335454d19?w=800&q=80"},
	},
	"rome": {
		{Title: "Colosseum Skip-the-Line Tour", Desc: "Explore the iconic amphitheater with priority access and expert historian guide.", Price: 55, Duration: "3 hours", Rating: 4.8, Reviews: 22000, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800&q=80"},
		{Title: "Vatican Museums & Sistine Chapel Tour", Desc: "Discover masterpieces of the Vatican including Michelangelo's famous ceiling.", Price: 65, Duration: "3 hours", Rating: 4.9, Reviews: 19500, Category: "Museums", Image: "https://images.unsplash.com/photo-1531572753322-ad063cecc140?w=800&q=80"},
		{Title: "Trevi Fountain & Spanish Steps Walk", Desc: "Evening walking tour of Rome's most romantic landmarks and piazzas.", Price: 25, Duration: "2 hours", Rating: 4.6, Reviews: 8900, Category: "Tours", Image: "https://images.unsplash.com/photo-1525874684015-58379d421a52?w=800&q=80"},
		{Title: "Roman Forum & Palatine Hill Tour", Desc: "Walk through the heart of ancient Rome with an archaeologist guide.", Price: 45, Duration: "2.5 hours", Rating: 4.7, Reviews: 7200, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1555992828-ca4dbe41d294?w=800&q=80"},
		{Title: "Pasta Making Class with Lunch", Desc: "Learn to make fresh pasta from scratch with a local Italian chef.", Price: 70, Duration: "3 hours", Rating: 4.9, Reviews: 4800, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1498579150354-977475b7ea0b?w=800&q=80"},
		{Title: "Pompeii Day Trip from Rome", Desc: "Explore the ancient city preserved by volcanic ash on a full-day excursion.", Price: 125, Duration: "Full day", Rating: 4.6, Reviews: 5600, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1586185392773-1db9d5c36f8d?w=800&q=80"},
		{Title: "Trastevere Food Tour", Desc: "Taste authentic Roman cuisine in the charming Trastevere neighborhood.", Price: 75, Duration: "3 hours", Rating: 4.8, Reviews: 3900, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1529260830199-42c24126f198?w=800&q=80"},
		{Title: "Borghese Gallery Guided Tour", Desc: "Admire Bernini sculptures and Caravaggio paintings in this stunning villa.", Price: 55, Duration: "2 hours", Rating: 4.8, Reviews: 3200, Category: "Museums", Image: "https://images.unsplash.com/photo-1545147986-a9d6f2ab03b5?w=800&q=80"},
	},
	"amsterdam": {
		{Title: "Anne Frank House Tour", Desc: "Visit the hiding place where Anne Frank wrote her famous diary.", Price: 45, Duration: "1.5 hours", Rating: 4.8, Reviews: 12500, Category: "Museums", Image: "https://images.unsplash.com/photo-1558551649-e44c8f992010?w=800&q=80"},
		{Title: "Van Gogh Museum Guided Tour", Desc: "Explore the world's largest Van Gogh collection with an art expert.", Price: 40, Duration: "2 hours", Rating: 4.9, Reviews: 9800, Category: "Museums", Image: "https://images.unsplash.com/photo-1580995858132-4f77cb6a4e9b?w=800&q=80"},
		{Title: "Canal Cruise with Drinks", Desc: "Glide through Amsterdam's UNESCO-listed canals with unlimited drinks.", Price: 25, Duration: "1 hour", Rating: 4.6, Reviews: 15200, Category: "Cruises", Image: "https://images.unsplash.com/photo-1534351590666-13e3e96b5017?w=800&q=80"},
		{Title: "Rijksmuseum Skip-the-Line Tour", Desc: "See Rembrandt's Night Watch and Dutch Golden Age masterpieces.", Price: 50, Duration: "2.5 hours", Rating: 4.8, Reviews: 7600, Category: "Museums", Image: "https://images.unsplash.com/photo-1576924542622-772281b13aa8?w=800&q=80"},
		{Title: "Bike Tour of Amsterdam", Desc: "Explore the city like a local on this guided cycling adventure.", Price: 35, Duration: "3 hours", Rating: 4.7, Reviews: 5400, Category: "Tours", Image: "https://images.unsplash.com/photo-1468078809804-f5e46d32d6cd?w=800&q=80"},
		{Title: "Keukenhof Gardens Day Trip", Desc: "Visit the world's largest flower garden with millions of tulips.", Price: 55, Duration: "5 hours", Rating: 4.8, Reviews: 8200, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1584627486850-5f01a726a5d2?w=800&q=80"},
		{Title: "Heineken Experience Tour", Desc: "Discover the history of Heineken with tastings at the original brewery.", Price: 25, Duration: "1.5 hours", Rating: 4.5, Reviews: 11000, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1608270586620-248524c67de9?w=800&q=80"},
		{Title: "Red Light District Walking Tour", Desc: "Explore Amsterdam's famous district with a knowledgeable local guide.", Price: 20, Duration: "2 hours", Rating: 4.4, Reviews: 6800, Category: "Tours", Image: "https://images.unsplash.com/photo-1512470876302-972faa2aa9a4?w=800&q=80"},
	},
	"athens": {
		{Title: "Acropolis Skip-the-Line Tour", Desc: "Explore the Parthenon and ancient citadel with priority access.", Price: 55, Duration: "2 hours", Rating: 4.9, Reviews: 16800, Category: "Landmarks", Image: "https://images.unsplash.com/photo-1555993539-1732b0258235?w=800&q=80"},
		{Title: "Acropolis Museum Guided Tour", Desc: "Discover ancient Greek artifacts in this stunning modern museum.", Price: 40, Duration: "2 hours", Rating: 4.8, Reviews: 7200, Category: "Museums", Image: "https://images.unsplash.com/photo-1603565816030-6b389eeb23cb?w=800&q=80"},
		{Title: "Athens Food Tour in Monastiraki", Desc: "Taste authentic Greek cuisine from souvlaki to baklava.", Price: 65, Duration: "3.5 hours", Rating: 4.8, Reviews: 4500, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1594212699903-ec8a3eca50f5?w=800&q=80"},
		{Title: "Delphi Full-Day Trip", Desc: "Visit the ancient Oracle of Delphi, center of the ancient world.", Price: 95, Duration: "Full day", Rating: 4.7, Reviews: 5800, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1594738559741-90e28cec9607?w=800&q=80"},
		{Title: "Greek Cooking Class", Desc: "Learn to cook traditional Greek dishes with a local chef.", Price: 75, Duration: "4 hours", Rating: 4.9, Reviews: 2900, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1551218808-94e220e084d2?w=800&q=80"},
		{Title: "Cape Sounion Sunset Tour", Desc: "Watch the sunset at the Temple of Poseidon on the Aegean coast.", Price: 55, Duration: "5 hours", Rating: 4.7, Reviews: 3600, Category: "Tours", Image: "https://images.unsplash.com/photo-1533105079780-92b9be482077?w=800&q=80"},
		{Title: "Plaka Walking Tour", Desc: "Explore the charming old neighborhood at the foot of the Acropolis.", Price: 25, Duration: "2.5 hours", Rating: 4.6, Reviews: 4100, Category: "Tours", Image: "https://images.unsplash.com/photo-1558618107-5e92ea04c03f?w=800&q=80"},
		{Title: "Meteora Day Trip from Athens", Desc: "Visit the stunning clifftop monasteries of Meteora.", Price: 110, Duration: "Full day", Rating: 4.8, Reviews: 4200, Category: "Day Trips", Image: "https://images.unsplash.com/photo-1574092303062-a62d7e3e2a52?w=800&q=80"},
	},
	"santorini": {
		{Title: "Santorini Caldera Sunset Cruise", Desc: "Sail around the volcanic caldera and watch the famous Santorini sunset.", Price: 95, Duration: "5 hours", Rating: 4.9, Reviews: 8500, Category: "Cruises", Image: "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800&q=80"},
		{Title: "Oia Walking Tour at Sunset", Desc: "Explore the iconic blue-domed village and find the perfect sunset spot.", Price: 35, Duration: "2.5 hours", Rating: 4.8, Reviews: 5200, Category: "Tours", Image: "https://images.unsplash.com/photo-1533105079780-92b9be482077?w=800&q=80"},
		{Title: "Wine Tasting Tour", Desc: "Sample unique Santorini wines at traditional clifftop wineries.", Price: 85, Duration: "4 hours", Rating: 4.8, Reviews: 4100, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb?w=800&q=80"},
		{Title: "Volcano & Hot Springs Tour", Desc: "Hike the volcanic crater and swim in natural hot springs.", Price: 45, Duration: "5 hours", Rating: 4.6, Reviews: 6200, Category: "Adventure", Image: "https://images.unsplash.com/photo-1557489225-4a1e1e3d0aec?w=800&q=80"},
		{Title: "Akrotiri Archaeological Site Tour", Desc: "Explore the 'Pompeii of the Aegean' - an ancient Minoan city.", Price: 55, Duration: "2 hours", Rating: 4.7, Reviews: 3100, Category: "Tours", Image: "https://images.unsplash.com/photo-1601581875309-fafbf2d3ed3a?w=800&q=80"},
		{Title: "Private Photography Tour", Desc: "Capture stunning photos at secret spots with a professional guide.", Price: 125, Duration: "3 hours", Rating: 4.9, Reviews: 1800, Category: "Tours", Image: "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e?w=800&q=80"},
		{Title: "Traditional Greek Cooking Class", Desc: "Learn to cook authentic Greek dishes with caldera views.", Price: 95, Duration: "4 hours", Rating: 4.8, Reviews: 2400, Category: "Food & Drink", Image: "https://images.unsplash.com/photo-1560717789-0ac7c58ac90a?w=800&q=80"},
		{Title: "ATV Island Exploration", Desc: "Explore hidden beaches and villages on an ATV adventure.", Price: 75, Duration: "4 hours", Rating: 4.5, Reviews: 2900, Category: "Adventure", Image: "https://images.unsplash.com/photo-1604537466573-5e94508fd243?w=800&q=80"},
	},
}
