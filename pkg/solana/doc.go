// Package solana fetches SOL transfer history over the Solana JSON-RPC API.
//
// The client speaks two RPC methods: getSignaturesForAddress to page through
// a wallet's confirmed signatures, and getTransaction (jsonParsed encoding)
// to extract system-program transfer instructions from each one. Confirmed
// transactions are immutable, so per-signature responses are cached through
// the cache package.
package solana
