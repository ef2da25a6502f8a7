// Package config loads gateway declarations and toolkit settings from YAML
// files and environment variables.
//
// Loading layers, later wins:
//
//  1. config.yml (base configuration)
//  2. environment variables
//  3. .env file
//
// The domain half of the package is the declarations file: a base block plus
// named gateway blocks that convert into declaration chains for the resolver,
// so endpoint catalogs can live in configuration instead of code.
package config
