// Package folio implements a personal investment tracker: users log buy and
// sell transactions for assets (equities, crypto, cash, bonds, real estate)
// and the package derives holdings, a daily mark-to-market value history, and
// performance and risk analytics over that history.
//
// The package is organised around a small number of concerns:
//
//   - Transaction and Portfolio hold the raw, persisted data.
//   - Holdings collapses transactions into present-day positions.
//   - ValueHistory replays transactions into a contiguous daily value series.
//   - metrics.go provides pure functions over series and holdings (TWR,
//     CAGR, Sharpe, volatility, beta, drawdown, concentration).
//   - Compare aligns the portfolio with a benchmark index series.
//
// Market data is consumed through the Quoter capability; see the yahoo
// subpackage for the live implementation and MemoQuoter for caching.
package folio
