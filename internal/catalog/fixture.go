package catalog

// SampleProducts returns the embedded fallback catalog used when the
// products document cannot be fetched or parsed. The shop page must never
// render empty on a load failure, so this list stands in for the real
// catalog until the next process restart.
func SampleProducts() []Product {
	return []Product{
		{
			ID:           1,
			Name:         "Executive Powder-Coated Curtain Rod",
			Subsidiary:   SubsidiaryExecutive,
			Category:     "curtain-rods",
			Price:        2500,
			OldPrice:     3000,
			Description:  "Durable steel curtain rod with elegant powder-coated finish, 20+ years lifespan.",
			Features:     []string{"Powder-coated", "Corrosion-resistant", "20-year guarantee"},
			Colors:       []string{"white", "black", "gold", "silver"},
			Sizes:        []string{"1.5m", "2m", "2.5m", "3m", "Custom"},
			Rating:       4.5,
			ReviewCount:  48,
			Stock:        150,
			BulkDiscount: "Buy 3+ save 10%",
		},
		{
			ID:          2,
			Name:        "Executive Double Curtain Rod Set",
			Subsidiary:  SubsidiaryExecutive,
			Category:    "curtain-rods",
			Price:       4200,
			Description: "Double-track rod set for layered curtains, wall or ceiling mounted.",
			Features:    []string{"Double track", "Heavy-duty brackets", "Easy glide"},
			Colors:      []string{"black", "silver"},
			Sizes:       []string{"2m", "2.5m", "3m"},
			Rating:      4.0,
			ReviewCount: 31,
			Stock:       80,
		},
		{
			ID:           3,
			Name:        "SetPaints Premium Interior Emulsion 20L",
			Subsidiary:  SubsidiarySetPaints,
			Category:    "paints",
			Price:       6800,
			OldPrice:    7500,
			Description: "Washable matt emulsion for interior walls and ceilings, low odour.",
			Features:    []string{"Washable", "Low odour", "High coverage"},
			Colors:      []string{"white", "cream", "grey"},
			Rating:      4.5,
			ReviewCount: 65,
			Stock:       220,
			BulkDiscount: "Buy 5+ save 15%",
		},
		{
			ID:          4,
			Name:        "SetPaints Exterior Weatherguard 4L",
			Subsidiary:  SubsidiarySetPaints,
			Category:    "paints",
			Price:       2900,
			Description: "All-weather acrylic paint for exterior masonry surfaces.",
			Features:    []string{"UV resistant", "Anti-fungal", "10-year protection"},
			Colors:      []string{"white", "beige", "terracotta"},
			Rating:      4.0,
			ReviewCount: 22,
			Stock:       140,
		},
		{
			ID:          5,
			Name:        "Set Hardware Stainless Steel Door Handle Set",
			Subsidiary:  SubsidiarySetHardware,
			Category:    "hardware",
			Price:       1800,
			Description: "Brushed stainless steel lever handle set with lock cylinder.",
			Features:    []string{"Stainless steel", "Reversible", "Keyed alike option"},
			Colors:      []string{"silver"},
			Rating:      4.5,
			ReviewCount: 54,
			Stock:       300,
		},
		{
			ID:          6,
			Name:        "Set Hardware Heavy-Duty Gate Hinges (Pair)",
			Subsidiary:  SubsidiarySetHardware,
			Category:    "hardware",
			Price:       950,
			Description: "Galvanised heavy-duty hinges for steel and timber gates.",
			Features:    []string{"Galvanised", "Load tested 120kg"},
			Rating:      3.5,
			ReviewCount: 12,
			Stock:       500,
		},
		{
			ID:          7,
			Name:        "SunWatch Solar Flood Light 100W",
			Subsidiary:  SubsidiarySunWatch,
			Category:    "solar",
			Price:       5500,
			OldPrice:    6200,
			Description: "Motion-sensing 100W solar flood light with remote control and IP66 housing.",
			Features:    []string{"Motion sensor", "Remote control", "IP66 waterproof"},
			Rating:      5.0,
			ReviewCount: 87,
			Stock:       95,
			BulkDiscount: "Buy 3+ save 10%",
		},
		{
			ID:          8,
			Name:        "SunWatch Solar Street Light 200W",
			Subsidiary:  SubsidiarySunWatch,
			Category:    "solar",
			Price:       12500,
			Description: "All-in-one 200W solar street light with dusk-to-dawn operation.",
			Features:    []string{"Dusk to dawn", "Aluminium body", "3-year warranty"},
			Rating:      4.5,
			ReviewCount: 40,
			Stock:       60,
		},
		{
			ID:          9,
			Name:        "SunWatch Solar Garden Light 30W",
			Subsidiary:  SubsidiarySunWatch,
			Category:    "solar",
			Price:       1500,
			Description: "Compact 30W solar garden lamp for pathways and perimeter walls.",
			Features:    []string{"Auto on/off", "Easy install"},
			Colors:      []string{"black"},
			Rating:      4.0,
			ReviewCount: 19,
			Stock:       400,
		},
	}
}
