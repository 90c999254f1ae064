// Package reference holds the immutable lookup tables shared by every request:
// department to region, region to display color, station pair to distance,
// station category meanings and the fixed year range of the usage dataset.
//
// Tables are built once at package initialization and only exposed through
// lookup functions, so callers cannot mutate them.
package reference
