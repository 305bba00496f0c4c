// Package models lists the OpenAI chat models that can serve as language
// identifiers with the current API key.
package models
