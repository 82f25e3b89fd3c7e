// Package model defines the provider-agnostic abstraction for the single
// outbound text-generation call the review pipeline makes.
//
// Core goals:
//   - One-shot request/response: no streaming, no tool calling, no retries
//   - Optional structured output: a Request may carry a JSON schema the
//     provider is asked to constrain its response to
//   - Optional image input for the photo-description capability
//   - Lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so the review layer stays decoupled from vendor SDKs.
package model
