// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

// refrigeratorParts is the fixture refrigerator catalog.
var refrigeratorParts = []Part{
	{
		PartNumber: "PS11746337",
		Name:       "Water Inlet Valve",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2198202.jpg",
		Price:      89.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT780SAEM1", "WRS325SDHZ", "WRF555SDFZ", "WRX735SDHZ",
		},
		Description: "The water inlet valve controls the flow of water into the refrigerator for the ice maker and water dispenser. If the valve fails, it can cause leaking, no water flow, or low water pressure.",
	},
	{
		PartNumber: "PS11752778",
		Name:       "Dispenser Module",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268383.jpg",
		Price:      158.67,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SMBM00", "WRF535SWHZ", "WRF767SDHZ", "WRF555SDHV",
		},
		Description: "The dispenser module controls the water and ice dispensing functions. If your dispenser isn't working properly, this module might need to be replaced.",
	},
	{
		PartNumber: "PS11722167",
		Name:       "Refrigerator Ice Maker Assembly",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8180356.jpg",
		Price:      239.50,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRS321SDHZ", "WRS325FDAM", "WRF535SWHZ", "WRS571CIHZ",
		},
		Description: "The ice maker assembly produces ice cubes for your refrigerator. If your refrigerator isn't making ice or is making too much ice, the ice maker may need to be replaced.",
	},
	{
		PartNumber: "PS11705149",
		Name:       "Temperature Control Thermostat",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2198202.jpg",
		Price:      142.75,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SMBM00", "WRB322DMBM", "WRS321SDHZ", "WRF767SDHZ",
		},
		Description: "The temperature control thermostat regulates the temperature in your refrigerator and freezer compartments. If your refrigerator is too warm or too cold, the thermostat may need to be replaced.",
	},
	{
		PartNumber: "PS11703459",
		Name:       "Defrost Timer",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp67003927.jpg",
		Price:      79.88,
		Stock:      "Out of Stock",
		CompatibleModels: []string{
			"WDT780SAEM1", "WRF535SWHZ", "WRS571CIHZ", "WRF767SDHZ",
		},
		Description: "The defrost timer controls the defrost cycle of your refrigerator. If your refrigerator is building up too much frost, the defrost timer may need to be replaced.",
	},
	{
		PartNumber: "PS11787619",
		Name:       "Refrigerator Door Bin",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2256758.jpg",
		Price:      45.29,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS325FDAM", "WRS571CIHZ",
		},
		Description: "The door bin is a shelf on the inside of the refrigerator door that holds bottles, jars, and other items. If your door bin is cracked or broken, it should be replaced.",
	},
	{
		PartNumber: "PS11784756",
		Name:       "Refrigerator Evaporator Fan Motor",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2188874.jpg",
		Price:      105.49,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRS325FDAM", "WRS571CIHZ", "WRF767SDHZ", "WRF535SWHZ",
		},
		Description: "The evaporator fan motor circulates air through the evaporator and into the refrigerator and freezer compartments. If your refrigerator is making noise or not cooling properly, the fan motor may need to be replaced.",
	},
	{
		PartNumber: "PS11761591",
		Name:       "Refrigerator Water Filter",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wpw10295370a.jpg",
		Price:      49.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS325FDAM", "WRF555SDFZ",
		},
		Description: "The water filter removes contaminants from the water used for the ice maker and water dispenser. It should be replaced every 6 months for optimal performance.",
	},
	{
		PartNumber: "PS11748915",
		Name:       "Refrigerator Compressor",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2319489.jpg",
		Price:      289.95,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SMBM00", "WRF767SDHZ", "WRS325FDAM", "WRS571CIHZ",
		},
		Description: "The compressor is the heart of the refrigeration system, pumping refrigerant through the coils. If your refrigerator isn't cooling at all, the compressor may have failed.",
	},
	{
		PartNumber: "PS11792457",
		Name:       "Refrigerator Light Bulb",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2319962.jpg",
		Price:      12.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS325FDAM", "WRS571CIHZ", "WDT780SAEM1",
		},
		Description: "The light bulb illuminates the interior of the refrigerator. If your refrigerator light isn't working, the bulb may need to be replaced.",
	},
	{
		PartNumber: "PS11776283",
		Name:       "Refrigerator Condenser Fan Motor",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2188908.jpg",
		Price:      79.95,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS325FDAM", "WRB322DMBM",
		},
		Description: "The condenser fan motor cools the condenser coils by drawing air through them. If your refrigerator is overheating or not cooling properly, the condenser fan motor may need to be replaced.",
	},
	{
		PartNumber: "PS11782143",
		Name:       "Refrigerator Door Gasket",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2188479.jpg",
		Price:      89.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS571CIHZ", "WRB322DMBM",
		},
		Description: "The door gasket creates a seal between the refrigerator door and cabinet. If your door isn't sealing properly or you feel cold air escaping, the gasket may need to be replaced.",
	},
	{
		PartNumber: "PS11771924",
		Name:       "Refrigerator Defrost Heater",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2213136.jpg",
		Price:      65.75,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS571CIHZ", "WRS325FDAM",
		},
		Description: "The defrost heater melts frost that accumulates on the evaporator coils. If your refrigerator is building up excessive frost, the defrost heater may need to be replaced.",
	},
	{
		PartNumber: "PS11758624",
		Name:       "Refrigerator Control Board",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8201649.jpg",
		Price:      199.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS571CIHZ", "WRF535SMBM00",
		},
		Description: "The control board regulates the refrigerator's functions. If your refrigerator is having multiple issues or not responding to controls, the control board may need to be replaced.",
	},
	{
		PartNumber: "PS11795632",
		Name:       "Refrigerator Shelf",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp2174744.jpg",
		Price:      59.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WRF535SWHZ", "WRF767SDHZ", "WRS571CIHZ", "WRS325FDAM",
		},
		Description: "The shelf provides storage space inside the refrigerator. If your shelf is cracked or broken, it should be replaced.",
	},
}

// dishwasherParts is the fixture dishwasher catalog.
var dishwasherParts = []Part{
	{
		PartNumber: "PS11743427",
		Name:       "Dishwasher Drain Pump",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp661658.jpg",
		Price:      71.95,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"KDFE104HPS", "WDT730PAHZ", "WDT750SAHZ", "WDF520PADM",
		},
		Description: "The drain pump removes water from the dishwasher during the drain cycle. If your dishwasher isn't draining properly, the drain pump may need to be replaced.",
	},
	{
		PartNumber: "PS11756393",
		Name:       "Dishwasher Water Inlet Valve",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8531669.jpg",
		Price:      52.49,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT750SAHZ", "WDF520PADM", "KDFE104HPS", "WDT970SAHZ",
		},
		Description: "The water inlet valve controls the flow of water into the dishwasher. If your dishwasher isn't filling with water, the inlet valve might be defective.",
	},
	{
		PartNumber: "PS11723171",
		Name:       "Dishwasher Door Latch Assembly",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8193830.jpg",
		Price:      94.88,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "KDFE104HPS",
		},
		Description: "The door latch assembly secures the dishwasher door and activates the door switch. If your dishwasher won't start or the door doesn't latch properly, this part may need to be replaced.",
	},
	{
		PartNumber: "PS11708155",
		Name:       "Dishwasher Control Board",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8564547.jpg",
		Price:      219.95,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "KDFE104HPS",
		},
		Description: "The control board manages the dishwasher's functions and cycles. If your dishwasher isn't working correctly or isn't responding to commands, the control board may need to be replaced.",
	},
	{
		PartNumber: "PS11769123",
		Name:       "Dishwasher Spray Arm",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268433r.jpg",
		Price:      35.27,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT730PAHZ", "WDT750SAHZ", "WDF520PADM", "KDFE104HPS",
		},
		Description: "The spray arm distributes water throughout the dishwasher to clean your dishes. If your dishes aren't getting clean, the spray arm might be clogged or damaged.",
	},
	{
		PartNumber: "PS11763814",
		Name:       "Dishwasher Heating Element",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8194300.jpg",
		Price:      84.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "KDFE104HPS",
		},
		Description: "The heating element heats water during wash cycles and helps dry dishes. If your dishes aren't drying properly, the heating element may be defective.",
	},
	{
		PartNumber: "PS11754921",
		Name:       "Dishwasher Dispenser Assembly",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268391.jpg",
		Price:      105.75,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDT730PAHZ", "WDF520PADM",
		},
		Description: "The dispenser assembly releases detergent and rinse aid at the appropriate times during the wash cycle. If detergent isn't being dispensed properly, this assembly may need to be replaced.",
	},
	{
		PartNumber: "PS11742639",
		Name:       "Dishwasher Door Gasket",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268385.jpg",
		Price:      42.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "KDFE104HPS",
		},
		Description: "The door gasket creates a watertight seal when the dishwasher door is closed. If your dishwasher is leaking from the door, the gasket may need to be replaced.",
	},
	{
		PartNumber: "PS11778432",
		Name:       "Dishwasher Circulation Pump",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8269145.jpg",
		Price:      119.95,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF520PADM", "KDFE104HPS",
		},
		Description: "The circulation pump circulates water through the spray arms during wash cycles. If your dishwasher isn't cleaning dishes properly, the circulation pump may be defective.",
	},
	{
		PartNumber: "PS11735184",
		Name:       "Dishwasher Timer",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268413.jpg",
		Price:      145.49,
		Stock:      "Out of Stock",
		CompatibleModels: []string{
			"WDF520PADM", "KDFE104HPS", "WDT730PAHZ", "WDF560SAFM",
		},
		Description: "The timer controls the duration of each wash cycle. If your dishwasher is stuck in one cycle or won't advance to the next cycle, the timer may need to be replaced.",
	},
	{
		PartNumber: "PS11749673",
		Name:       "Dishwasher Float Switch Assembly",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268429.jpg",
		Price:      28.75,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDF520PADM", "KDFE104HPS", "WDT750SAHZ",
		},
		Description: "The float switch prevents the dishwasher from overfilling. If your dishwasher keeps filling with water or won't fill at all, the float switch may be defective.",
	},
	{
		PartNumber: "PS11767529",
		Name:       "Dishwasher Wash Arm Bearing Kit",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268375.jpg",
		Price:      18.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "WDF520PADM",
		},
		Description: "The wash arm bearing kit allows the spray arm to rotate freely. If the spray arm isn't spinning properly, the bearing kit may need to be replaced.",
	},
	{
		PartNumber: "PS11751892",
		Name:       "Dishwasher Silverware Basket",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268376.jpg",
		Price:      37.49,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "KDFE104HPS", "WDT730PAHZ",
		},
		Description: "The silverware basket holds utensils during wash cycles. If your silverware basket is damaged or missing, it should be replaced for optimal cleaning.",
	},
	{
		PartNumber: "PS11759246",
		Name:       "Dishwasher Rack Adjuster",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268404.jpg",
		Price:      22.99,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "KDFE104HPS",
		},
		Description: "The rack adjuster allows you to raise or lower the upper dish rack. If your rack won't stay in position or is difficult to adjust, the rack adjuster may need to be replaced.",
	},
	{
		PartNumber: "PS11774635",
		Name:       "Dishwasher Rinse Aid Dispenser Cap",
		ImageURL:   "https://www.appliancepartspros.com/images/thmb/65-wp8268398.jpg",
		Price:      15.45,
		Stock:      "In Stock",
		CompatibleModels: []string{
			"WDT970SAHZ", "WDT750SAHZ", "WDF560SAFM", "WDF520PADM", "KDFE104HPS",
		},
		Description: "The rinse aid dispenser cap covers the rinse aid reservoir. If your rinse aid is leaking or not dispensing, the cap may need to be replaced.",
	},
}
