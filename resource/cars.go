package resource

// Static vehicle reference data: popular brands for the Indian market, each
// with five models. The price multiplier drives the service quote shown at
// booking time.

type CarModel struct {
	Name            string   `json:"name"`
	FuelTypes       []string `json:"fuel_types"`
	Segment         string   `json:"segment"`
	PriceMultiplier float64  `json:"price_multiplier"`
}

type CarBrand struct {
	Name   string     `json:"name"`
	Models []CarModel `json:"models"`
}

var CarBrands = []CarBrand{
	{
		Name: "Maruti Suzuki",
		Models: []CarModel{
			{Name: "Swift", FuelTypes: []string{"Petrol", "CNG"}, Segment: "economy", PriceMultiplier: 1.0},
			{Name: "Baleno", FuelTypes: []string{"Petrol", "CNG"}, Segment: "economy", PriceMultiplier: 1.1},
			{Name: "Brezza", FuelTypes: []string{"Petrol", "CNG"}, Segment: "midsize", PriceMultiplier: 1.2},
			{Name: "Ertiga", FuelTypes: []string{"Petrol", "CNG"}, Segment: "midsize", PriceMultiplier: 1.3},
			{Name: "Grand Vitara", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "premium", PriceMultiplier: 1.5},
		},
	},
	{
		Name: "Hyundai",
		Models: []CarModel{
			{Name: "i20", FuelTypes: []string{"Petrol"}, Segment: "economy", PriceMultiplier: 1.1},
			{Name: "Venue", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "midsize", PriceMultiplier: 1.2},
			{Name: "Creta", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "midsize", PriceMultiplier: 1.4},
			{Name: "Verna", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "premium", PriceMultiplier: 1.3},
			{Name: "Tucson", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "luxury", PriceMultiplier: 1.8},
		},
	},
	{
		Name: "Tata Motors",
		Models: []CarModel{
			{Name: "Tiago", FuelTypes: []string{"Petrol", "CNG", "Electric"}, Segment: "economy", PriceMultiplier: 1.0},
			{Name: "Altroz", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "economy", PriceMultiplier: 1.1},
			{Name: "Nexon", FuelTypes: []string{"Petrol", "Diesel", "Electric"}, Segment: "midsize", PriceMultiplier: 1.3},
			{Name: "Harrier", FuelTypes: []string{"Diesel"}, Segment: "premium", PriceMultiplier: 1.5},
			{Name: "Safari", FuelTypes: []string{"Diesel"}, Segment: "premium", PriceMultiplier: 1.6},
		},
	},
	{
		Name: "Mahindra",
		Models: []CarModel{
			{Name: "XUV300", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "midsize", PriceMultiplier: 1.2},
			{Name: "XUV400", FuelTypes: []string{"Electric"}, Segment: "midsize", PriceMultiplier: 1.4},
			{Name: "Scorpio-N", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "premium", PriceMultiplier: 1.5},
			{Name: "XUV700", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "premium", PriceMultiplier: 1.6},
			{Name: "Thar", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "premium", PriceMultiplier: 1.4},
		},
	},
	{
		Name: "Honda",
		Models: []CarModel{
			{Name: "Amaze", FuelTypes: []string{"Petrol"}, Segment: "economy", PriceMultiplier: 1.1},
			{Name: "City", FuelTypes: []string{"Petrol", "Diesel"}, Segment: "midsize", PriceMultiplier: 1.3},
			{Name: "City e:HEV", FuelTypes: []string{"Petrol"}, Segment: "premium", PriceMultiplier: 1.5},
			{Name: "Elevate", FuelTypes: []string{"Petrol"}, Segment: "midsize", PriceMultiplier: 1.4},
			{Name: "CR-V", FuelTypes: []string{"Petrol"}, Segment: "luxury", PriceMultiplier: 1.8},
		},
	},
}

// ServiceBasePrices maps catalog service names to their base price in INR.
var ServiceBasePrices = map[string]float64{
	"Preventive Maintenance Service": 3500,
	"Body Repair Service":            5000,
	"Car Care Service":               2500,
}

const defaultBasePrice = 3500

// ModelsForBrand returns the models of a brand, nil when unknown.
func ModelsForBrand(brandName string) []CarModel {
	for _, b := range CarBrands {
		if b.Name == brandName {
			return b.Models
		}
	}
	return nil
}

// FuelTypesForModel returns the fuel types offered for a model. Unknown
// models fall back to Petrol.
func FuelTypesForModel(brandName, modelName string) []string {
	for _, m := range ModelsForBrand(brandName) {
		if m.Name == modelName {
			return m.FuelTypes
		}
	}
	return []string{"Petrol"}
}

// PriceMultiplier returns the pricing multiplier for a model, 1.0 when the
// brand or model is unknown.
func PriceMultiplier(brandName, modelName string) float64 {
	for _, m := range ModelsForBrand(brandName) {
		if m.Name == modelName {
			return m.PriceMultiplier
		}
	}
	return 1.0
}

// BasePriceForService returns the base price of a catalog service, falling
// back to the default for unknown names.
func BasePriceForService(serviceName string) float64 {
	if p, ok := ServiceBasePrices[serviceName]; ok {
		return p
	}
	return defaultBasePrice
}

// CalculateServicePrice computes the quoted price for a service on a given
// car, rounded to the nearest rupee.
func CalculateServicePrice(brandName, modelName, serviceName string) float64 {
	base := BasePriceForService(serviceName)
	multiplier := PriceMultiplier(brandName, modelName)
	return float64(int64(base*multiplier + 0.5))
}
