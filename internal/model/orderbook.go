package model

import "sort"

// OrderBook holds the orders for a single item, partitioned by side and
// sorted by competitiveness: the best offer to act on comes first.
type OrderBook struct {
	Buy  []Order // Highest platinum first
	Sell []Order // Lowest platinum first
}

// NewOrderBook partitions orders by type and sorts each side.
// Buy orders sort by descending platinum, sell orders by ascending
// platinum; within a price level the most recently updated order wins.
// Orders with an unknown type are dropped.
func NewOrderBook(orders []Order) OrderBook {
	var book OrderBook
	for _, o := range orders {
		switch o.Type {
		case OrderTypeBuy:
			book.Buy = append(book.Buy, o)
		case OrderTypeSell:
			book.Sell = append(book.Sell, o)
		}
	}

	sort.SliceStable(book.Buy, func(i, j int) bool {
		if book.Buy[i].Platinum != book.Buy[j].Platinum {
			return book.Buy[i].Platinum > book.Buy[j].Platinum
		}
		return book.Buy[i].LastUpdate.After(book.Buy[j].LastUpdate)
	})

	sort.SliceStable(book.Sell, func(i, j int) bool {
		if book.Sell[i].Platinum != book.Sell[j].Platinum {
			return book.Sell[i].Platinum < book.Sell[j].Platinum
		}
		return book.Sell[i].LastUpdate.After(book.Sell[j].LastUpdate)
	})

	return book
}
