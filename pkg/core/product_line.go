package core

// ProductLine identifies one of the exchange's independently hosted APIs.
type ProductLine int

// Product line constants.
const (
	// ProductSpot is the spot market API (/api/v3).
	ProductSpot ProductLine = iota
	// ProductPerpetualFutures is the USDⓈ-M perpetual futures API (/fapi/v1).
	ProductPerpetualFutures
	// ProductDeliveryFutures is the COIN-M delivery futures API (/dapi/v1).
	ProductDeliveryFutures
)

// REST hosts per product line.
const (
	HostSpot           = "https://api.binance.com"
	HostSpotTestnet    = "https://testnet.binance.vision"
	HostPerpetual      = "https://fapi.binance.com"
	HostDelivery       = "https://dapi.binance.com"
	HostFuturesTestnet = "https://testnet.binancefuture.com"
)

// String returns the string representation of the product line.
func (p ProductLine) String() string {
	switch p {
	case ProductSpot:
		return "spot"
	case ProductPerpetualFutures:
		return "perpetual_futures"
	case ProductDeliveryFutures:
		return "delivery_futures"
	default:
		return "unknown"
	}
}

// Host returns the REST host for the product line. If testnet is true the
// test environment host is returned.
func (p ProductLine) Host(testnet bool) string {
	switch p {
	case ProductPerpetualFutures:
		if testnet {
			return HostFuturesTestnet
		}
		return HostPerpetual
	case ProductDeliveryFutures:
		if testnet {
			return HostFuturesTestnet
		}
		return HostDelivery
	default:
		if testnet {
			return HostSpotTestnet
		}
		return HostSpot
	}
}
