// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./test/mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/catalog.go -destination=catalog_gateway_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/store.go -destination=count_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/scanner.go -destination=scanner_mock.go -package=mocks
