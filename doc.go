// Package cargoportl provides the state and derivation layer for the
// CargoPortl operations dashboard. It is a pure client of the remote cargo
// server and keeps no local persistence.
//
// The core functionalities include:
//   - Resource Stores: one per collection (clients, shipments, invoices),
//     each holding the authoritative server-truth list next to a filtered
//     view of it, together with the load/error status of the last request.
//   - Composite Mutations: create, update and delete operate on a full
//     entry (client + shipment + invoice) in a single request, mirroring
//     the server's /createFullEntry family of endpoints.
//   - Cross-Collection Joins: stateless functions that resolve foreign keys
//     between the three collections to build the views the dashboard pages
//     render (a client with its shipments, an invoice with its shipment and
//     client, the detail sheet for one shipment).
//   - Report Aggregates: monthly shipment counts, revenue by transport
//     mode, and status/mode breakdowns for the dashboard.
//
// This package serves as the foundational logic for the `cpl` command-line
// tool; all rendering and transport concerns live in subpackages.
package cargoportl
