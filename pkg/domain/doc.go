// Package domain contains the value types exchanged between the tax core, the
// calculator service and the transports: bracket tables, the inputs collected
// from a form, and the computed results. They carry no behaviour beyond small
// derivations and are recomputed on every request; nothing here is persisted.
package domain
