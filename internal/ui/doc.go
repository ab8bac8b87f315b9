// Package ui renders git command lifecycle events as concise console
// messages, so a failed checkout or push shows what git reported while the
// structured logger keeps the full field set.
package ui
