/*
Package xtcepath resolves Space System references into absolute paths.

A path is a "/"-separated sequence of Space System names, optionally followed
by an entity name, e.g. `/Spacecraft/Payload/BatteryVoltage`. A reference that
starts with "/" is absolute; anything else is relative to a context path and
may use "." (stay) and ".." (climb one level) segments.

The root Space System is the first segment of every absolute path, so ".."
may never remove it: `Resolve("/A/B", "../../C")` fails with EscapesRoot.
*/
package xtcepath
