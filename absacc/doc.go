// Package absacc contains the abstractaccount.v1 messages exchanged with the
// chain when registering an abstract account, their protobuf wire encoding,
// and the Any envelope used to submit them through a generic message router.
//
// Requests are wrapped with ToAny and routed by type URL; responses are
// decoded with UnmarshalRegisterAccountResponse. A Registry performs the
// inverse routing on the receiving side.
package absacc
