// Package bench times competing implementations of the same operation
// under identical conditions and tabulates their relative performance.
//
// Variants run strictly one after another with a pause in between, so a
// variant never pays for its predecessor's cache pollution or thermal
// throttling. Reports keep the mean over all calls separate from the
// mean excluding the first call; for compiled variants the first call
// includes compilation latency and conflating the two makes them look
// falsely slow.
package bench
