/*

Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each package keeps its whole configuration as a single protobuf object,
stored under a "_c:<package>" singleton key. Initial state is loaded from
the genesis "conf" section and later updates are applied through an owner
authorized patch message processed by UpdateConfigurationHandler.

*/
package gconf
