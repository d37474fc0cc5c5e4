// Package models defines the core domain types for TripCraft.
//
// The three groups of types are:
//   - User / Credential: registered accounts and their password hashes
//   - Plan / PlanConfig / PlanDay / Destination / ScheduleEntry / Membership:
//     shareable trip itinerary documents and their role associations
//   - Region / SubRegion / Country / State / City: immutable world reference
//     data, seeded out of band and never written by request handling
//
// Design principles:
//  1. Plain data structs; mapping to and from storage rows is explicit and
//     lives in the storage layer, never on the model.
//  2. Relationships use ID strings plus optional eager-loaded pointers, no
//     circular references.
//  3. Denormalized fields (Destination.Name, Destination.CountryISO2) are
//     resolved at write time by the plan reconciliation engine.
package models
