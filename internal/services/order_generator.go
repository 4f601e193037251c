package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"commerce-insights/internal/models"

	"github.com/shopspring/decimal"
)

type productInfo struct {
	Name      string
	UnitPrice float64
}

type orderGenerator struct {
	overseasPool   []string
	productCatalog []productInfo
	rng            *rand.Rand
	refSeq         int
}

const (
	domesticCountry    = "United Kingdom"
	domesticShare      = 0.82
	returnShare        = 0.02
	frequentBuyerShare = 0.30
	invoiceSeqStart    = 540000
	openingHour        = 7
	closingHour        = 20
	maxUnitsPerLine    = 24
	customerIDMin      = 10000
	customerIDSpan     = 90000
)

// NewOrderGenerator creates a new order generator seeded from the clock
func NewOrderGenerator() OrderGeneratorInterface {
	return NewOrderGeneratorWithSeed(time.Now().UnixNano())
}

// NewOrderGeneratorWithSeed creates a generator with a fixed seed so the
// same request parameters reproduce the same dataset
func NewOrderGeneratorWithSeed(seed int64) OrderGeneratorInterface {
	return &orderGenerator{
		overseasPool:   initializeOverseasPool(),
		productCatalog: initializeProductCatalog(),
		rng:            rand.New(rand.NewSource(seed)),
		refSeq:         invoiceSeqStart,
	}
}

// initializeOverseasPool lists the non-domestic shipping destinations
func initializeOverseasPool() []string {
	return []string{
		"Germany",
		"France",
		"EIRE",
		"Spain",
		"Netherlands",
		"Belgium",
		"Switzerland",
		"Portugal",
		"Australia",
		"Norway",
		"Italy",
		"Channel Islands",
		"Finland",
		"Cyprus",
		"Sweden",
		"Austria",
		"Denmark",
		"Japan",
		"Poland",
		"USA",
	}
}

// initializeProductCatalog creates a pool of 30+ giftware products with
// list prices
func initializeProductCatalog() []productInfo {
	return []productInfo{
		// Kitchen & pantry (10 products)
		{"SET OF 3 CAKE TINS PANTRY DESIGN", 4.95},
		{"REGENCY CAKESTAND 3 TIER", 12.75},
		{"JAM MAKING SET WITH JARS", 4.25},
		{"SET OF 6 SPICE TINS PANTRY DESIGN", 3.95},
		{"PACK OF 72 RETROSPOT CAKE CASES", 0.55},
		{"RETRO SPOT TEA SET CERAMIC 11 PC", 4.95},
		{"BAKING SET 9 PIECE RETROSPOT", 4.95},
		{"SET OF 4 PANTRY JELLY MOULDS", 1.25},
		{"RECIPE BOX PANTRY YELLOW DESIGN", 2.95},
		{"MINI PAINT SET VINTAGE", 0.65},

		// Home decorations (12 products)
		{"WHITE HANGING HEART T-LIGHT HOLDER", 2.55},
		{"ASSORTED COLOUR BIRD ORNAMENT", 1.69},
		{"GLASS STAR FROSTED T-LIGHT HOLDER", 4.25},
		{"NATURAL SLATE HEART CHALKBOARD", 2.95},
		{"ZINC METAL HEART DECORATION", 0.85},
		{"HEART OF WICKER SMALL", 1.65},
		{"HEART OF WICKER LARGE", 2.95},
		{"WOODEN PICTURE FRAME WHITE FINISH", 2.55},
		{"WOOD BLACK BOARD ANT WHITE FINISH", 4.25},
		{"RED HANGING HEART T-LIGHT HOLDER", 2.55},
		{"DOORMAT UNION FLAG", 7.95},
		{"SET 7 BABUSHKA NESTING BOXES", 7.65},

		// Party & seasonal (8 products)
		{"PARTY BUNTING", 4.95},
		{"SPOTTY BUNTING", 4.95},
		{"PAPER CHAIN KIT 50'S CHRISTMAS", 2.55},
		{"CHILLI LIGHTS", 4.95},
		{"RABBIT NIGHT LIGHT", 1.79},
		{"VINTAGE SNAP CARDS", 0.85},
		{"JUMBO BAG RED RETROSPOT", 1.95},
		{"LUNCH BAG RED RETROSPOT", 1.65},

		// Warmers & textiles (4 products)
		{"HOT WATER BOTTLE TEA AND SYMPATHY", 3.95},
		{"KNITTED UNION FLAG HOT WATER BOTTLE", 3.39},
		{"RED WOOLLY HOTTIE WHITE HEART", 3.39},
		{"HAND WARMER UNION JACK", 1.85},

		// Carriage charges (1 product)
		{"POSTAGE", 18.00},
	}
}

// GenerateCustomerIDs generates unique numeric customer identifiers
func (g *orderGenerator) GenerateCustomerIDs(count int) []string {
	ids := make([]string, 0, count)
	seen := make(map[int]bool, count)

	for len(ids) < count {
		candidate := customerIDMin + g.rng.Intn(customerIDSpan)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		ids = append(ids, fmt.Sprintf("%d", candidate))
	}

	return ids
}

// SelectCountry selects a shipping country with weighted distribution
// Distribution: 82% domestic, 18% spread across the overseas pool
func (g *orderGenerator) SelectCountry() string {
	if g.rng.Float64() < domesticShare {
		return domesticCountry
	}
	return g.overseasPool[g.rng.Intn(len(g.overseasPool))]
}

// SelectProduct selects a random product from the catalog
func (g *orderGenerator) SelectProduct() (string, float64) {
	product := g.productCatalog[g.rng.Intn(len(g.productCatalog))]
	return product.Name, product.UnitPrice
}

// GenerateLineCount generates the number of lines on an order
// Distribution: 35% single line, 30% 2-3 lines, 25% 4-6 lines, 10% 7-12 lines
func (g *orderGenerator) GenerateLineCount() int {
	roll := g.rng.Float64()

	if roll < 0.35 {
		return 1
	}
	if roll < 0.65 {
		return 2 + g.rng.Intn(2)
	}
	if roll < 0.90 {
		return 4 + g.rng.Intn(3)
	}
	return 7 + g.rng.Intn(6)
}

// GenerateTimestamp generates a random timestamp within the date range,
// constrained to trading hours
func (g *orderGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return time.Date(startDate.Year(), startDate.Month(), startDate.Day(), openingHour, 0, 0, 0, time.UTC)
	}

	randomDuration := time.Duration(g.rng.Int63n(int64(diff)))
	timestamp := startDate.Add(randomDuration)

	hour := openingHour + g.rng.Intn(closingHour-openingHour)
	minute := g.rng.Intn(60)
	second := g.rng.Intn(60)

	return time.Date(
		timestamp.Year(),
		timestamp.Month(),
		timestamp.Day(),
		hour,
		minute,
		second,
		0,
		time.UTC,
	)
}

// GenerateOrders generates orderCount orders spread over customerCount
// customers, returning the individual ledger lines sorted chronologically.
// A small share of orders are credit notes with negative quantities and
// amounts.
func (g *orderGenerator) GenerateOrders(startDate, endDate time.Time, customerCount, orderCount int) []models.Order {
	if customerCount <= 0 || orderCount <= 0 {
		return []models.Order{}
	}

	customers := g.GenerateCustomerIDs(customerCount)
	homeCountry := make(map[string]string, customerCount)
	for _, id := range customers {
		homeCountry[id] = g.SelectCountry()
	}

	lines := make([]models.Order, 0, orderCount*3)
	for i := 0; i < orderCount; i++ {
		customerID := g.pickCustomer(customers)
		isReturn := g.rng.Float64() < returnShare
		orderRef := g.nextOrderRef(isReturn)
		occurredAt := g.GenerateTimestamp(startDate, endDate)
		lineCount := g.GenerateLineCount()

		for line := 0; line < lineCount; line++ {
			lines = append(lines, g.buildOrderLine(orderRef, customerID, homeCountry[customerID], occurredAt, isReturn))
		}
	}

	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].OccurredAt.Equal(lines[j].OccurredAt) {
			return lines[i].OccurredAt.Before(lines[j].OccurredAt)
		}
		return lines[i].OrderRef < lines[j].OrderRef
	})

	return lines
}

// pickCustomer selects the buyer for an order
// Distribution: 30% of orders concentrate on the first decile of customers
func (g *orderGenerator) pickCustomer(customers []string) string {
	if len(customers) >= 10 && g.rng.Float64() < frequentBuyerShare {
		return customers[g.rng.Intn(len(customers)/10)]
	}
	return customers[g.rng.Intn(len(customers))]
}

// nextOrderRef returns the next sequential invoice number. Credit notes
// carry a C prefix, matching how returns are keyed in retail ledgers.
func (g *orderGenerator) nextOrderRef(isReturn bool) string {
	g.refSeq++
	if isReturn {
		return fmt.Sprintf("C%d", g.refSeq)
	}
	return fmt.Sprintf("%d", g.refSeq)
}

func (g *orderGenerator) buildOrderLine(orderRef, customerID, country string, occurredAt time.Time, isReturn bool) models.Order {
	productName, unitPrice := g.SelectProduct()
	quantity := 1 + g.rng.Intn(maxUnitsPerLine)
	amount := decimal.NewFromFloat(unitPrice * float64(quantity)).Round(2)

	if isReturn {
		quantity = -quantity
		amount = amount.Neg()
	}

	return models.Order{
		OrderRef:   orderRef,
		CustomerID: customerID,
		Country:    country,
		Product:    productName,
		Quantity:   quantity,
		Amount:     amount,
		OccurredAt: occurredAt,
	}
}
