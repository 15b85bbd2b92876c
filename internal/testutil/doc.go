// Package testutil holds helpers shared by the package tests: parsing HCL
// snippets and laying out program files on disk.
package testutil
