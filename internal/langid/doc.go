// Package langid identifies the language of a text. Identifiers ask a
// remote chat model (OpenAI or Gemini) for a language tag; they can be
// wrapped in a circuit breaker, a fallback chain and an in-memory cache.
package langid
