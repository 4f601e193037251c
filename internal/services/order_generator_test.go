package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type OrderGeneratorTestSuite struct {
	suite.Suite
	generator *orderGenerator
}

func TestOrderGeneratorSuite(t *testing.T) {
	suite.Run(t, new(OrderGeneratorTestSuite))
}

func (s *OrderGeneratorTestSuite) SetupTest() {
	s.generator = NewOrderGenerator().(*orderGenerator)
}

// Catalog Tests

func (s *OrderGeneratorTestSuite) TestProductCatalog_HasMinimum30Products() {
	s.GreaterOrEqual(len(s.generator.productCatalog), 30, "Product catalog should have at least 30 products")
}

func (s *OrderGeneratorTestSuite) TestProductCatalog_HasValidPrices() {
	for _, product := range s.generator.productCatalog {
		s.NotEmpty(product.Name)
		s.Greater(product.UnitPrice, 0.0, "Unit price should be positive for product: %s", product.Name)
	}
}

func (s *OrderGeneratorTestSuite) TestOverseasPool_ExcludesDomesticMarket() {
	s.GreaterOrEqual(len(s.generator.overseasPool), 15, "Overseas pool should cover a spread of destinations")

	for _, country := range s.generator.overseasPool {
		s.NotEqual(domesticCountry, country, "Overseas pool should not contain the domestic market")
	}
}

func (s *OrderGeneratorTestSuite) TestSelectProduct_ReturnsCatalogEntries() {
	prices := make(map[string]float64, len(s.generator.productCatalog))
	for _, product := range s.generator.productCatalog {
		prices[product.Name] = product.UnitPrice
	}

	for i := 0; i < 100; i++ {
		name, unitPrice := s.generator.SelectProduct()
		expected, ok := prices[name]
		s.True(ok, "Selected product should come from the catalog: %s", name)
		s.Equal(expected, unitPrice)
	}
}

// Customer ID Tests

func (s *OrderGeneratorTestSuite) TestGenerateCustomerIDs_ExactCount() {
	ids := s.generator.GenerateCustomerIDs(150)
	s.Len(ids, 150)
}

func (s *OrderGeneratorTestSuite) TestGenerateCustomerIDs_Unique() {
	ids := s.generator.GenerateCustomerIDs(500)

	seen := make(map[string]bool)
	for _, id := range ids {
		s.False(seen[id], "Customer IDs should be unique: %s", id)
		seen[id] = true
		s.Len(id, 5, "Customer IDs should be five-digit numerics")
	}
}

// Distribution Tests

func (s *OrderGeneratorTestSuite) TestSelectCountry_Distribution() {
	iterations := 1000
	domestic := 0

	for i := 0; i < iterations; i++ {
		if s.generator.SelectCountry() == domesticCountry {
			domestic++
		}
	}

	domesticRatio := float64(domestic) / float64(iterations)
	s.InDelta(0.82, domesticRatio, 0.05, "Domestic ratio should be approximately 82%")
}

func (s *OrderGeneratorTestSuite) TestGenerateLineCount_Distribution() {
	iterations := 1000
	singles := 0

	for i := 0; i < iterations; i++ {
		count := s.generator.GenerateLineCount()
		s.GreaterOrEqual(count, 1, "Orders should carry at least one line")
		s.LessOrEqual(count, 12, "Orders should carry at most twelve lines")
		if count == 1 {
			singles++
		}
	}

	singleRatio := float64(singles) / float64(iterations)
	s.InDelta(0.35, singleRatio, 0.08, "Single-line ratio should be approximately 35%")
}

// Temporal Pattern Tests

func (s *OrderGeneratorTestSuite) TestGenerateTimestamp_WithinDateRange() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	for i := 0; i < 100; i++ {
		timestamp := s.generator.GenerateTimestamp(startDate, endDate)
		s.False(timestamp.Before(startDate), "Timestamp should not precede the start date")
		s.False(timestamp.After(endDate), "Timestamp should not pass the end date")
	}
}

func (s *OrderGeneratorTestSuite) TestGenerateTimestamp_TradingHours() {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	for i := 0; i < 100; i++ {
		timestamp := s.generator.GenerateTimestamp(startDate, endDate)
		s.GreaterOrEqual(timestamp.Hour(), openingHour, "Orders should land within trading hours")
		s.Less(timestamp.Hour(), closingHour, "Orders should land within trading hours")
		s.Equal(time.UTC, timestamp.Location())
	}
}

func (s *OrderGeneratorTestSuite) TestGenerateTimestamp_InvertedRange() {
	startDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 0, -1)

	timestamp := s.generator.GenerateTimestamp(startDate, endDate)
	s.Equal(startDate.Day(), timestamp.Day())
	s.Equal(openingHour, timestamp.Hour())
}

// Order Generation Tests

func (s *OrderGeneratorTestSuite) TestGenerateOrders_DistinctInvoiceCount() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	lines := s.generator.GenerateOrders(startDate, endDate, 50, 200)

	refs := make(map[string]bool)
	for _, line := range lines {
		refs[line.OrderRef] = true
	}

	s.Len(refs, 200, "Generated lines should collapse to the requested order count")
	s.GreaterOrEqual(len(lines), 200, "Each order should carry at least one line")
}

func (s *OrderGeneratorTestSuite) TestGenerateOrders_ChronologicalOrder() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	lines := s.generator.GenerateOrders(startDate, endDate, 20, 100)

	for i := 0; i < len(lines)-1; i++ {
		s.False(lines[i].OccurredAt.After(lines[i+1].OccurredAt),
			"Lines should be sorted chronologically")
	}
}

func (s *OrderGeneratorTestSuite) TestGenerateOrders_CreditNotesAreNegative() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	lines := s.generator.GenerateOrders(startDate, endDate, 50, 2000)

	creditNotes := 0
	for _, line := range lines {
		if strings.HasPrefix(line.OrderRef, "C") {
			creditNotes++
			s.Negative(line.Quantity, "Credit note lines should carry negative quantities")
			s.True(line.Amount.IsNegative(), "Credit note lines should carry negative amounts")
			s.True(line.IsReturn())
		} else {
			s.Positive(line.Quantity)
			s.True(line.Amount.IsPositive(), "Sale lines should carry positive amounts")
		}
	}

	s.Greater(creditNotes, 0, "A realistic ledger should include some returns")
}

func (s *OrderGeneratorTestSuite) TestGenerateOrders_CustomersKeepTheirCountry() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	lines := s.generator.GenerateOrders(startDate, endDate, 30, 300)

	countryByCustomer := make(map[string]string)
	for _, line := range lines {
		if seen, ok := countryByCustomer[line.CustomerID]; ok {
			s.Equal(seen, line.Country, "A customer should always ship to the same country")
		} else {
			countryByCustomer[line.CustomerID] = line.Country
		}
	}
}

func (s *OrderGeneratorTestSuite) TestGenerateOrders_CountriesComeFromPools() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	valid := map[string]bool{domesticCountry: true}
	for _, country := range s.generator.overseasPool {
		valid[country] = true
	}

	lines := s.generator.GenerateOrders(startDate, endDate, 40, 150)
	for _, line := range lines {
		s.True(valid[line.Country], "Country should come from the configured pools: %s", line.Country)
	}
}

// Edge Case Tests

func (s *OrderGeneratorTestSuite) TestGenerateOrders_ZeroCount() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	s.Empty(s.generator.GenerateOrders(startDate, endDate, 10, 0))
	s.Empty(s.generator.GenerateOrders(startDate, endDate, 0, 10))
}

func (s *OrderGeneratorTestSuite) TestGenerateOrders_SingleDay() {
	startDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)

	lines := s.generator.GenerateOrders(startDate, endDate, 5, 20)

	s.NotEmpty(lines)
	for _, line := range lines {
		s.Equal(startDate.Year(), line.OccurredAt.Year())
		s.Equal(startDate.Month(), line.OccurredAt.Month())
		s.Equal(startDate.Day(), line.OccurredAt.Day())
	}
}

// Determinism Tests

func (s *OrderGeneratorTestSuite) TestGenerateOrders_SeedReproducesDataset() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	first := NewOrderGeneratorWithSeed(42).GenerateOrders(startDate, endDate, 25, 100)
	second := NewOrderGeneratorWithSeed(42).GenerateOrders(startDate, endDate, 25, 100)

	s.Require().Equal(len(first), len(second))
	for i := range first {
		s.Equal(first[i].OrderRef, second[i].OrderRef)
		s.Equal(first[i].CustomerID, second[i].CustomerID)
		s.Equal(first[i].Country, second[i].Country)
		s.Equal(first[i].Product, second[i].Product)
		s.Equal(first[i].Quantity, second[i].Quantity)
		s.True(first[i].Amount.Equal(second[i].Amount))
		s.True(first[i].OccurredAt.Equal(second[i].OccurredAt))
	}
}

func (s *OrderGeneratorTestSuite) TestGenerateOrders_DifferentSeedsDiverge() {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	first := NewOrderGeneratorWithSeed(1).GenerateOrders(startDate, endDate, 25, 100)
	second := NewOrderGeneratorWithSeed(2).GenerateOrders(startDate, endDate, 25, 100)

	identical := len(first) == len(second)
	if identical {
		for i := range first {
			if first[i].CustomerID != second[i].CustomerID || first[i].Product != second[i].Product {
				identical = false
				break
			}
		}
	}

	s.False(identical, "Different seeds should produce different datasets")
}
