// Command grayline assembles GELF records from the command line: send ships
// one record to the configured collector, preview prints the assembled record
// without sending, and config manages the TOML configuration file.
package main
