/*
Package remittance implements a two party escrow transfer ledger.

A sender deposits coins addressed to a specific recipient. The deposit,
minus a configured fee, is held by a transfer account derived from the
transfer identifier. The identifier itself is a hash over the chain ID,
both participants and a secret shared out of band. Whoever proves
knowledge of the secret can move the held coins: the recipient may claim
at any time before or after the deadline, the sender may reclaim only
once the deadline has passed. Every transfer ends in exactly one of the
two terminal states and the record is kept forever with a zeroed amount.

Fees accumulate on a collector account and can be withdrawn by the
configuration owner.
*/
package remittance
