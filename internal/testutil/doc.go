// Package testutil provides shared fixtures for package tests: draft and
// record builders plus a canned well-formed review response.
package testutil
