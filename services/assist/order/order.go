// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package order exposes order-status lookups. The mock store carries a small
// set of fixture orders; the interface leaves room for the live orders API.
package order

import (
	"context"
	"strings"
)

// Item is one line of an order.
type Item struct {
	PartNumber string  `json:"part_number"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// Address is an order's shipping destination.
type Address struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Order is one customer order with its fulfillment state.
type Order struct {
	OrderNumber       string  `json:"order_number"`
	Date              string  `json:"date"`
	CustomerEmail     string  `json:"customer_email"`
	Status            string  `json:"status"`
	TrackingNumber    string  `json:"tracking_number,omitempty"`
	Carrier           string  `json:"carrier,omitempty"`
	EstimatedDelivery string  `json:"estimated_delivery,omitempty"`
	DeliveryDate      string  `json:"delivery_date,omitempty"`
	Items             []Item  `json:"items"`
	Total             float64 `json:"total"`
	ShippingAddress   Address `json:"shipping_address"`
}

// Store is the read side of order status.
//
// Thread Safety: Implementations must be safe for concurrent use.
type Store interface {
	// GetByNumber returns the order with the given number, matched
	// case-insensitively, and whether it exists.
	GetByNumber(ctx context.Context, orderNumber string) (*Order, bool, error)

	// FindByEmail returns every order placed under the email, matched
	// case-insensitively.
	FindByEmail(ctx context.Context, email string) ([]Order, error)
}

// MockStore serves fixture orders from memory.
//
// Thread Safety: The fixture map is never mutated after construction, so all
// methods are safe for concurrent use.
type MockStore struct {
	orders map[string]Order
}

// NewMockStore builds a store over the built-in fixture orders.
func NewMockStore() *MockStore {
	s := &MockStore{orders: make(map[string]Order, len(fixtureOrders))}
	for _, o := range fixtureOrders {
		s.orders[o.OrderNumber] = o
	}
	return s
}

func (s *MockStore) GetByNumber(_ context.Context, orderNumber string) (*Order, bool, error) {
	o, ok := s.orders[strings.ToUpper(orderNumber)]
	if !ok {
		return nil, false, nil
	}
	return &o, true, nil
}

func (s *MockStore) FindByEmail(_ context.Context, email string) ([]Order, error) {
	target := strings.ToLower(email)
	var orders []Order
	for _, o := range fixtureOrders {
		if strings.ToLower(o.CustomerEmail) == target {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// fixtureOrders is the demo order book, one order per fulfillment state.
var fixtureOrders = []Order{
	{
		OrderNumber:       "ORD123456",
		Date:              "2025-05-15",
		CustomerEmail:     "john.doe@example.com",
		Status:            "Shipped",
		TrackingNumber:    "1ZW23X4Y5678901234",
		Carrier:           "UPS",
		EstimatedDelivery: "2025-05-22",
		Items: []Item{
			{
				PartNumber: "DA29-00020B",
				Name:       "Samsung Refrigerator Water Filter",
				Quantity:   2,
				Price:      49.99,
			},
		},
		Total: 99.98,
		ShippingAddress: Address{
			Name:   "John Doe",
			Street: "123 Main St",
			City:   "Anytown",
			State:  "CA",
			Zip:    "12345",
		},
	},
	{
		OrderNumber:   "ORD789012",
		Date:          "2025-05-18",
		CustomerEmail: "jane.smith@example.com",
		Status:        "Processing",
		Items: []Item{
			{
				PartNumber: "WPW10295370",
				Name:       "Dishwasher Control Board",
				Quantity:   1,
				Price:      129.99,
			},
			{
				PartNumber: "NLP8800",
				Name:       "Installation Kit",
				Quantity:   1,
				Price:      24.99,
			},
		},
		Total: 154.98,
		ShippingAddress: Address{
			Name:   "Jane Smith",
			Street: "456 Oak Ave",
			City:   "Somewhere",
			State:  "NY",
			Zip:    "67890",
		},
	},
	{
		OrderNumber:    "ORD345678",
		Date:           "2025-05-10",
		CustomerEmail:  "bob.jones@example.com",
		Status:         "Delivered",
		DeliveryDate:   "2025-05-17",
		TrackingNumber: "9405803699300493847283",
		Carrier:        "USPS",
		Items: []Item{
			{
				PartNumber: "4392067",
				Name:       "Dryer Repair Kit",
				Quantity:   1,
				Price:      39.99,
			},
		},
		Total: 39.99,
		ShippingAddress: Address{
			Name:   "Bob Jones",
			Street: "789 Pine Blvd",
			City:   "Elsewhere",
			State:  "TX",
			Zip:    "13579",
		},
	},
}
