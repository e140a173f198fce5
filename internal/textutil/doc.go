// Package textutil provides the separator sets and formatting helpers the
// title rules share.
//
// Cleanup is the canonical formatter injected into hole detection: it
// collapses separator runs into single spaces and trims the result, so a raw
// gap like ".Of.Monsters.and.Men." formats to "Of Monsters and Men".
// DisplayTitle additionally title-cases a value for presentation.
package textutil
