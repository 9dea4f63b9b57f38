/*
Package guard implements an emergency stop for the application.

A single configuration entity holds a pause flag and the address of the
administrator allowed to flip it. While the flag is set, the Decorator
rejects every state changing transaction except those addressed to this
extension, so that the administrator can always unpause. Queries are not
routed through decorators and remain available.
*/
package guard
