// Package flexfolio derives backtesting-ready time series from a brokerage
// Flex statement: time-weighted daily returns, daily mark-to-market position
// values per instrument, and a normalized transaction ledger, each available
// per accounting model and for the aggregate of all models.
//
// A statement is parsed once into an immutable [Statement]; every derivation
// recomputes from it, addressed through a [ModelSelector]. The only external
// dependency of the derivations is a [PriceSource] for daily close prices,
// typically the eodhd subpackage wrapped in a [CachedSource].
package flexfolio
