// Package identity carries the authenticated caller through request
// contexts. The token middleware resolves the Authorization header to an
// Identity and stores it with Set; handlers and the permission predicate
// read it back with Get.
package identity
