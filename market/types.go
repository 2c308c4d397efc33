// Copyright (c) 2026 the Ultra-Low-Latency Order Book Engine authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package market defines the type vocabulary shared by the engine's
// components: fixed-width identifiers, side and message-type enums,
// price/tick conversion, and the engine's sizing constants.
//
// Everything here is deliberately small and integer-shaped so that
// messages built from these types copy cheaply through the ring
// package's queues.
package market

// Price is a price in ticks (e.g. $100.25 at a $0.01 tick is 10025).
type Price = uint32

// Quantity is a share quantity.
type Quantity = uint32

// OrderID uniquely identifies an order.
type OrderID = uint64

// Timestamp is nanoseconds since epoch or raw TSC cycles, depending
// on the clock in use.
type Timestamp = uint64

// SymbolID is a numeric symbol identifier; resolving strings to IDs
// happens once at session start, never on the hot path.
type SymbolID = uint16

// Side of an order.
type Side uint8

const (
	Buy Side = iota
	Sell
)

// String returns "BUY" or "SELL".
func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// MsgType identifies a feed message.
type MsgType uint8

const (
	MsgAddOrder MsgType = iota + 1
	MsgCancelOrder
	MsgModifyOrder
	MsgExecuteOrder
	MsgTrade
	MsgHeartbeat
)

// String returns the wire name of the message type.
func (m MsgType) String() string {
	switch m {
	case MsgAddOrder:
		return "ADD_ORDER"
	case MsgCancelOrder:
		return "CANCEL_ORDER"
	case MsgModifyOrder:
		return "MODIFY_ORDER"
	case MsgExecuteOrder:
		return "EXECUTE_ORDER"
	case MsgTrade:
		return "TRADE"
	case MsgHeartbeat:
		return "HEARTBEAT"
	default:
		return "UNKNOWN"
	}
}

// Engine sizing constants. Ring sizes must be powers of two.
const (
	MessageRingSize = 65536
	OutputRingSize  = 32768

	MaxOrders  = 1000000
	MaxSymbols = 1000

	MaxPriceLevels = 65536
	MinPrice       = Price(1)
	MaxPrice       = Price(MaxPriceLevels)

	LatencySampleSize = 1000000
)

// DefaultTickSize is the price increment used when no per-symbol tick
// size is configured.
const DefaultTickSize = 0.01

// PriceToTicks converts a dollar price to ticks, rounding to nearest.
func PriceToTicks(dollars, tickSize float64) Price {
	return Price(dollars/tickSize + 0.5)
}

// TicksToPrice converts ticks back to a dollar price.
func TicksToPrice(ticks Price, tickSize float64) float64 {
	return float64(ticks) * tickSize
}
