// Package fixtures builds circulation entities and in-memory engines for feature tests.
package fixtures
