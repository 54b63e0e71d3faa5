// Package opdict implements the static operator dictionary: a lookup from
// (character, form) to default spacing and flags, used by the MathML
// normalizer to fill in attributes an mo element left unspecified.
package opdict
