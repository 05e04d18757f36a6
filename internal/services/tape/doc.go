// Package tape implements keyless reading of Baudot tape files.
package tape
