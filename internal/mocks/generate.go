// Package mocks provides mock implementations for testing the agent's ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. Hand-written doubles for the auth ports live in the
// auth subpackage; the generated mocks here suit tests that want expectation
// ordering and call-count verification.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for IdentityAPI, the request/response boundary to the remote
// identity service: VerifyFace, Login, Register, Profile, Logout.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=identity_api_mock.go github.com/Pulkitsaraswat52/facegate/internal/ports IdentityAPI

// Generate mock for EntriesAPI: ListEntries, AddEntry, UpdateEntry,
// DeleteEntry, ListFaces.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=entries_api_mock.go github.com/Pulkitsaraswat52/facegate/internal/ports EntriesAPI

// Generate mock for FrameSource: Capture.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=frame_source_mock.go github.com/Pulkitsaraswat52/facegate/internal/ports FrameSource

// Generate mock for TokenVerifier: Verify.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=token_verifier_mock.go github.com/Pulkitsaraswat52/facegate/internal/ports TokenVerifier
