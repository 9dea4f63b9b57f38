package std

import (
	fmt "fmt"
	io "io"

	proto "github.com/gogo/protobuf/proto"
	"github.com/iov-one/remit/migration"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/guard"
	"github.com/iov-one/remit/x/remittance"
	"github.com/iov-one/remit/x/sigs"
)

// Tx contains the message and the required authentication. Every
// application specific message must be registered in the sum oneof.
//
// Field numbers 1-50 are reserved for the transaction envelope itself,
// application messages start at 51.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	// Types that are valid to be assigned to Sum:
	//	*Tx_CashSendMsg
	//	*Tx_ExecuteBatchMsg
	//	*Tx_MigrationUpgradeSchemaMsg
	//	*Tx_SigsBumpSequenceMsg
	//	*Tx_CashUpdateConfigurationMsg
	//	*Tx_GuardSetPausedMsg
	//	*Tx_GuardUpdateConfigurationMsg
	//	*Tx_RemittanceCreateMsg
	//	*Tx_RemittanceClaimMsg
	//	*Tx_RemittanceReclaimMsg
	//	*Tx_RemittanceWithdrawFeesMsg
	//	*Tx_RemittanceUpdateConfigurationMsg
	Sum isTx_Sum `protobuf_oneof:"sum"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

type isTx_Sum interface {
	isTx_Sum()
	MarshalTo([]byte) (int, error)
	Size() int
}

type Tx_CashSendMsg struct {
	CashSendMsg *cash.SendMsg `protobuf:"bytes,51,opt,name=cash_send_msg,json=cashSendMsg,proto3,oneof"`
}
type Tx_ExecuteBatchMsg struct {
	ExecuteBatchMsg *ExecuteBatchMsg `protobuf:"bytes,52,opt,name=execute_batch_msg,json=executeBatchMsg,proto3,oneof"`
}
type Tx_MigrationUpgradeSchemaMsg struct {
	MigrationUpgradeSchemaMsg *migration.UpgradeSchemaMsg `protobuf:"bytes,53,opt,name=migration_upgrade_schema_msg,json=migrationUpgradeSchemaMsg,proto3,oneof"`
}
type Tx_SigsBumpSequenceMsg struct {
	SigsBumpSequenceMsg *sigs.BumpSequenceMsg `protobuf:"bytes,54,opt,name=sigs_bump_sequence_msg,json=sigsBumpSequenceMsg,proto3,oneof"`
}
type Tx_CashUpdateConfigurationMsg struct {
	CashUpdateConfigurationMsg *cash.UpdateConfigurationMsg `protobuf:"bytes,55,opt,name=cash_update_configuration_msg,json=cashUpdateConfigurationMsg,proto3,oneof"`
}
type Tx_GuardSetPausedMsg struct {
	GuardSetPausedMsg *guard.SetPausedMsg `protobuf:"bytes,56,opt,name=guard_set_paused_msg,json=guardSetPausedMsg,proto3,oneof"`
}
type Tx_GuardUpdateConfigurationMsg struct {
	GuardUpdateConfigurationMsg *guard.UpdateConfigurationMsg `protobuf:"bytes,57,opt,name=guard_update_configuration_msg,json=guardUpdateConfigurationMsg,proto3,oneof"`
}
type Tx_RemittanceCreateMsg struct {
	RemittanceCreateMsg *remittance.CreateMsg `protobuf:"bytes,58,opt,name=remittance_create_msg,json=remittanceCreateMsg,proto3,oneof"`
}
type Tx_RemittanceClaimMsg struct {
	RemittanceClaimMsg *remittance.ClaimMsg `protobuf:"bytes,59,opt,name=remittance_claim_msg,json=remittanceClaimMsg,proto3,oneof"`
}
type Tx_RemittanceReclaimMsg struct {
	RemittanceReclaimMsg *remittance.ReclaimMsg `protobuf:"bytes,60,opt,name=remittance_reclaim_msg,json=remittanceReclaimMsg,proto3,oneof"`
}
type Tx_RemittanceWithdrawFeesMsg struct {
	RemittanceWithdrawFeesMsg *remittance.WithdrawFeesMsg `protobuf:"bytes,61,opt,name=remittance_withdraw_fees_msg,json=remittanceWithdrawFeesMsg,proto3,oneof"`
}
type Tx_RemittanceUpdateConfigurationMsg struct {
	RemittanceUpdateConfigurationMsg *remittance.UpdateConfigurationMsg `protobuf:"bytes,62,opt,name=remittance_update_configuration_msg,json=remittanceUpdateConfigurationMsg,proto3,oneof"`
}

func (*Tx_CashSendMsg) isTx_Sum()                      {}
func (*Tx_ExecuteBatchMsg) isTx_Sum()                  {}
func (*Tx_MigrationUpgradeSchemaMsg) isTx_Sum()        {}
func (*Tx_SigsBumpSequenceMsg) isTx_Sum()              {}
func (*Tx_CashUpdateConfigurationMsg) isTx_Sum()       {}
func (*Tx_GuardSetPausedMsg) isTx_Sum()                {}
func (*Tx_GuardUpdateConfigurationMsg) isTx_Sum()      {}
func (*Tx_RemittanceCreateMsg) isTx_Sum()              {}
func (*Tx_RemittanceClaimMsg) isTx_Sum()               {}
func (*Tx_RemittanceReclaimMsg) isTx_Sum()             {}
func (*Tx_RemittanceWithdrawFeesMsg) isTx_Sum()        {}
func (*Tx_RemittanceUpdateConfigurationMsg) isTx_Sum() {}

func (m *Tx) GetSum() isTx_Sum {
	if m != nil {
		return m.Sum
	}
	return nil
}

func (m *Tx) GetSignatures() []*sigs.StdSignature {
	if m != nil {
		return m.Signatures
	}
	return nil
}

func (m *Tx) GetCashSendMsg() *cash.SendMsg {
	if x, ok := m.GetSum().(*Tx_CashSendMsg); ok {
		return x.CashSendMsg
	}
	return nil
}

func (m *Tx) GetExecuteBatchMsg() *ExecuteBatchMsg {
	if x, ok := m.GetSum().(*Tx_ExecuteBatchMsg); ok {
		return x.ExecuteBatchMsg
	}
	return nil
}

func (m *Tx) GetMigrationUpgradeSchemaMsg() *migration.UpgradeSchemaMsg {
	if x, ok := m.GetSum().(*Tx_MigrationUpgradeSchemaMsg); ok {
		return x.MigrationUpgradeSchemaMsg
	}
	return nil
}

func (m *Tx) GetSigsBumpSequenceMsg() *sigs.BumpSequenceMsg {
	if x, ok := m.GetSum().(*Tx_SigsBumpSequenceMsg); ok {
		return x.SigsBumpSequenceMsg
	}
	return nil
}

func (m *Tx) GetCashUpdateConfigurationMsg() *cash.UpdateConfigurationMsg {
	if x, ok := m.GetSum().(*Tx_CashUpdateConfigurationMsg); ok {
		return x.CashUpdateConfigurationMsg
	}
	return nil
}

func (m *Tx) GetGuardSetPausedMsg() *guard.SetPausedMsg {
	if x, ok := m.GetSum().(*Tx_GuardSetPausedMsg); ok {
		return x.GuardSetPausedMsg
	}
	return nil
}

func (m *Tx) GetGuardUpdateConfigurationMsg() *guard.UpdateConfigurationMsg {
	if x, ok := m.GetSum().(*Tx_GuardUpdateConfigurationMsg); ok {
		return x.GuardUpdateConfigurationMsg
	}
	return nil
}

func (m *Tx) GetRemittanceCreateMsg() *remittance.CreateMsg {
	if x, ok := m.GetSum().(*Tx_RemittanceCreateMsg); ok {
		return x.RemittanceCreateMsg
	}
	return nil
}

func (m *Tx) GetRemittanceClaimMsg() *remittance.ClaimMsg {
	if x, ok := m.GetSum().(*Tx_RemittanceClaimMsg); ok {
		return x.RemittanceClaimMsg
	}
	return nil
}

func (m *Tx) GetRemittanceReclaimMsg() *remittance.ReclaimMsg {
	if x, ok := m.GetSum().(*Tx_RemittanceReclaimMsg); ok {
		return x.RemittanceReclaimMsg
	}
	return nil
}

func (m *Tx) GetRemittanceWithdrawFeesMsg() *remittance.WithdrawFeesMsg {
	if x, ok := m.GetSum().(*Tx_RemittanceWithdrawFeesMsg); ok {
		return x.RemittanceWithdrawFeesMsg
	}
	return nil
}

func (m *Tx) GetRemittanceUpdateConfigurationMsg() *remittance.UpdateConfigurationMsg {
	if x, ok := m.GetSum().(*Tx_RemittanceUpdateConfigurationMsg); ok {
		return x.RemittanceUpdateConfigurationMsg
	}
	return nil
}

// ExecuteBatchMsg executes multiple messages within a single transaction.
// Only messages that move funds can be batched. Administrative messages
// must be submitted on their own.
type ExecuteBatchMsg struct {
	Messages []ExecuteBatchMsg_Union `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages"`
}

func (m *ExecuteBatchMsg) Reset()         { *m = ExecuteBatchMsg{} }
func (m *ExecuteBatchMsg) String() string { return proto.CompactTextString(m) }
func (*ExecuteBatchMsg) ProtoMessage()    {}

func (m *ExecuteBatchMsg) GetMessages() []ExecuteBatchMsg_Union {
	if m != nil {
		return m.Messages
	}
	return nil
}

type ExecuteBatchMsg_Union struct {
	// Types that are valid to be assigned to Sum:
	//	*ExecuteBatchMsg_Union_CashSendMsg
	//	*ExecuteBatchMsg_Union_RemittanceCreateMsg
	//	*ExecuteBatchMsg_Union_RemittanceClaimMsg
	//	*ExecuteBatchMsg_Union_RemittanceReclaimMsg
	//	*ExecuteBatchMsg_Union_RemittanceWithdrawFeesMsg
	Sum isExecuteBatchMsg_Union_Sum `protobuf_oneof:"sum"`
}

func (m *ExecuteBatchMsg_Union) Reset()         { *m = ExecuteBatchMsg_Union{} }
func (m *ExecuteBatchMsg_Union) String() string { return proto.CompactTextString(m) }
func (*ExecuteBatchMsg_Union) ProtoMessage()    {}

type isExecuteBatchMsg_Union_Sum interface {
	isExecuteBatchMsg_Union_Sum()
	MarshalTo([]byte) (int, error)
	Size() int
}

type ExecuteBatchMsg_Union_CashSendMsg struct {
	CashSendMsg *cash.SendMsg `protobuf:"bytes,51,opt,name=cash_send_msg,json=cashSendMsg,proto3,oneof"`
}
type ExecuteBatchMsg_Union_RemittanceCreateMsg struct {
	RemittanceCreateMsg *remittance.CreateMsg `protobuf:"bytes,58,opt,name=remittance_create_msg,json=remittanceCreateMsg,proto3,oneof"`
}
type ExecuteBatchMsg_Union_RemittanceClaimMsg struct {
	RemittanceClaimMsg *remittance.ClaimMsg `protobuf:"bytes,59,opt,name=remittance_claim_msg,json=remittanceClaimMsg,proto3,oneof"`
}
type ExecuteBatchMsg_Union_RemittanceReclaimMsg struct {
	RemittanceReclaimMsg *remittance.ReclaimMsg `protobuf:"bytes,60,opt,name=remittance_reclaim_msg,json=remittanceReclaimMsg,proto3,oneof"`
}
type ExecuteBatchMsg_Union_RemittanceWithdrawFeesMsg struct {
	RemittanceWithdrawFeesMsg *remittance.WithdrawFeesMsg `protobuf:"bytes,61,opt,name=remittance_withdraw_fees_msg,json=remittanceWithdrawFeesMsg,proto3,oneof"`
}

func (*ExecuteBatchMsg_Union_CashSendMsg) isExecuteBatchMsg_Union_Sum()               {}
func (*ExecuteBatchMsg_Union_RemittanceCreateMsg) isExecuteBatchMsg_Union_Sum()       {}
func (*ExecuteBatchMsg_Union_RemittanceClaimMsg) isExecuteBatchMsg_Union_Sum()        {}
func (*ExecuteBatchMsg_Union_RemittanceReclaimMsg) isExecuteBatchMsg_Union_Sum()      {}
func (*ExecuteBatchMsg_Union_RemittanceWithdrawFeesMsg) isExecuteBatchMsg_Union_Sum() {}

func (m *ExecuteBatchMsg_Union) GetSum() isExecuteBatchMsg_Union_Sum {
	if m != nil {
		return m.Sum
	}
	return nil
}

func (m *ExecuteBatchMsg_Union) GetCashSendMsg() *cash.SendMsg {
	if x, ok := m.GetSum().(*ExecuteBatchMsg_Union_CashSendMsg); ok {
		return x.CashSendMsg
	}
	return nil
}

func (m *ExecuteBatchMsg_Union) GetRemittanceCreateMsg() *remittance.CreateMsg {
	if x, ok := m.GetSum().(*ExecuteBatchMsg_Union_RemittanceCreateMsg); ok {
		return x.RemittanceCreateMsg
	}
	return nil
}

func (m *ExecuteBatchMsg_Union) GetRemittanceClaimMsg() *remittance.ClaimMsg {
	if x, ok := m.GetSum().(*ExecuteBatchMsg_Union_RemittanceClaimMsg); ok {
		return x.RemittanceClaimMsg
	}
	return nil
}

func (m *ExecuteBatchMsg_Union) GetRemittanceReclaimMsg() *remittance.ReclaimMsg {
	if x, ok := m.GetSum().(*ExecuteBatchMsg_Union_RemittanceReclaimMsg); ok {
		return x.RemittanceReclaimMsg
	}
	return nil
}

func (m *ExecuteBatchMsg_Union) GetRemittanceWithdrawFeesMsg() *remittance.WithdrawFeesMsg {
	if x, ok := m.GetSum().(*ExecuteBatchMsg_Union_RemittanceWithdrawFeesMsg); ok {
		return x.RemittanceWithdrawFeesMsg
	}
	return nil
}

func (m *Tx) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *Tx) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if len(m.Signatures) > 0 {
		for _, msg := range m.Signatures {
			dAtA[i] = 0xa
			i++
			i = encodeVarintCodec(dAtA, i, uint64(msg.Size()))
			n, err := msg.MarshalTo(dAtA[i:])
			if err != nil {
				return 0, err
			}
			i += n
		}
	}
	if m.Sum != nil {
		nn1, err := m.Sum.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += nn1
	}
	return i, nil
}

func (m *Tx_CashSendMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.CashSendMsg != nil {
		dAtA[i] = 0x9a
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.CashSendMsg.Size()))
		n2, err := m.CashSendMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n2
	}
	return i, nil
}

func (m *Tx_ExecuteBatchMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.ExecuteBatchMsg != nil {
		dAtA[i] = 0xa2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.ExecuteBatchMsg.Size()))
		n3, err := m.ExecuteBatchMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n3
	}
	return i, nil
}

func (m *Tx_MigrationUpgradeSchemaMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.MigrationUpgradeSchemaMsg != nil {
		dAtA[i] = 0xaa
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.MigrationUpgradeSchemaMsg.Size()))
		n4, err := m.MigrationUpgradeSchemaMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n4
	}
	return i, nil
}

func (m *Tx_SigsBumpSequenceMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.SigsBumpSequenceMsg != nil {
		dAtA[i] = 0xb2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.SigsBumpSequenceMsg.Size()))
		n5, err := m.SigsBumpSequenceMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n5
	}
	return i, nil
}

func (m *Tx_CashUpdateConfigurationMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.CashUpdateConfigurationMsg != nil {
		dAtA[i] = 0xba
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.CashUpdateConfigurationMsg.Size()))
		n6, err := m.CashUpdateConfigurationMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n6
	}
	return i, nil
}

func (m *Tx_GuardSetPausedMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.GuardSetPausedMsg != nil {
		dAtA[i] = 0xc2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.GuardSetPausedMsg.Size()))
		n7, err := m.GuardSetPausedMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n7
	}
	return i, nil
}

func (m *Tx_GuardUpdateConfigurationMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.GuardUpdateConfigurationMsg != nil {
		dAtA[i] = 0xca
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.GuardUpdateConfigurationMsg.Size()))
		n8, err := m.GuardUpdateConfigurationMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n8
	}
	return i, nil
}

func (m *Tx_RemittanceCreateMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceCreateMsg != nil {
		dAtA[i] = 0xd2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceCreateMsg.Size()))
		n9, err := m.RemittanceCreateMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n9
	}
	return i, nil
}

func (m *Tx_RemittanceClaimMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceClaimMsg != nil {
		dAtA[i] = 0xda
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceClaimMsg.Size()))
		n10, err := m.RemittanceClaimMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n10
	}
	return i, nil
}

func (m *Tx_RemittanceReclaimMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceReclaimMsg != nil {
		dAtA[i] = 0xe2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceReclaimMsg.Size()))
		n11, err := m.RemittanceReclaimMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n11
	}
	return i, nil
}

func (m *Tx_RemittanceWithdrawFeesMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceWithdrawFeesMsg != nil {
		dAtA[i] = 0xea
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceWithdrawFeesMsg.Size()))
		n12, err := m.RemittanceWithdrawFeesMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n12
	}
	return i, nil
}

func (m *Tx_RemittanceUpdateConfigurationMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceUpdateConfigurationMsg != nil {
		dAtA[i] = 0xf2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceUpdateConfigurationMsg.Size()))
		n13, err := m.RemittanceUpdateConfigurationMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n13
	}
	return i, nil
}

func (m *ExecuteBatchMsg) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *ExecuteBatchMsg) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if len(m.Messages) > 0 {
		for _, msg := range m.Messages {
			dAtA[i] = 0xa
			i++
			i = encodeVarintCodec(dAtA, i, uint64(msg.Size()))
			n, err := msg.MarshalTo(dAtA[i:])
			if err != nil {
				return 0, err
			}
			i += n
		}
	}
	return i, nil
}

func (m *ExecuteBatchMsg_Union) Marshal() (dAtA []byte, err error) {
	size := m.Size()
	dAtA = make([]byte, size)
	n, err := m.MarshalTo(dAtA)
	if err != nil {
		return nil, err
	}
	return dAtA[:n], nil
}

func (m *ExecuteBatchMsg_Union) MarshalTo(dAtA []byte) (int, error) {
	var i int
	_ = i
	var l int
	_ = l
	if m.Sum != nil {
		nn14, err := m.Sum.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += nn14
	}
	return i, nil
}

func (m *ExecuteBatchMsg_Union_CashSendMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.CashSendMsg != nil {
		dAtA[i] = 0x9a
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.CashSendMsg.Size()))
		n15, err := m.CashSendMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n15
	}
	return i, nil
}

func (m *ExecuteBatchMsg_Union_RemittanceCreateMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceCreateMsg != nil {
		dAtA[i] = 0xd2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceCreateMsg.Size()))
		n16, err := m.RemittanceCreateMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n16
	}
	return i, nil
}

func (m *ExecuteBatchMsg_Union_RemittanceClaimMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceClaimMsg != nil {
		dAtA[i] = 0xda
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceClaimMsg.Size()))
		n17, err := m.RemittanceClaimMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n17
	}
	return i, nil
}

func (m *ExecuteBatchMsg_Union_RemittanceReclaimMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceReclaimMsg != nil {
		dAtA[i] = 0xe2
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceReclaimMsg.Size()))
		n18, err := m.RemittanceReclaimMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n18
	}
	return i, nil
}

func (m *ExecuteBatchMsg_Union_RemittanceWithdrawFeesMsg) MarshalTo(dAtA []byte) (int, error) {
	i := 0
	if m.RemittanceWithdrawFeesMsg != nil {
		dAtA[i] = 0xea
		i++
		dAtA[i] = 0x3
		i++
		i = encodeVarintCodec(dAtA, i, uint64(m.RemittanceWithdrawFeesMsg.Size()))
		n19, err := m.RemittanceWithdrawFeesMsg.MarshalTo(dAtA[i:])
		if err != nil {
			return 0, err
		}
		i += n19
	}
	return i, nil
}

func encodeVarintCodec(dAtA []byte, offset int, v uint64) int {
	for v >= 1<<7 {
		dAtA[offset] = uint8(v&0x7f | 0x80)
		v >>= 7
		offset++
	}
	dAtA[offset] = uint8(v)
	return offset + 1
}

func (m *Tx) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if len(m.Signatures) > 0 {
		for _, e := range m.Signatures {
			l = e.Size()
			n += 1 + l + sovCodec(uint64(l))
		}
	}
	if m.Sum != nil {
		n += m.Sum.Size()
	}
	return n
}

func (m *Tx_CashSendMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.CashSendMsg != nil {
		l = m.CashSendMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_ExecuteBatchMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.ExecuteBatchMsg != nil {
		l = m.ExecuteBatchMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_MigrationUpgradeSchemaMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.MigrationUpgradeSchemaMsg != nil {
		l = m.MigrationUpgradeSchemaMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_SigsBumpSequenceMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.SigsBumpSequenceMsg != nil {
		l = m.SigsBumpSequenceMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_CashUpdateConfigurationMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.CashUpdateConfigurationMsg != nil {
		l = m.CashUpdateConfigurationMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_GuardSetPausedMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.GuardSetPausedMsg != nil {
		l = m.GuardSetPausedMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_GuardUpdateConfigurationMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.GuardUpdateConfigurationMsg != nil {
		l = m.GuardUpdateConfigurationMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_RemittanceCreateMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceCreateMsg != nil {
		l = m.RemittanceCreateMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_RemittanceClaimMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceClaimMsg != nil {
		l = m.RemittanceClaimMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_RemittanceReclaimMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceReclaimMsg != nil {
		l = m.RemittanceReclaimMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_RemittanceWithdrawFeesMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceWithdrawFeesMsg != nil {
		l = m.RemittanceWithdrawFeesMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Tx_RemittanceUpdateConfigurationMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceUpdateConfigurationMsg != nil {
		l = m.RemittanceUpdateConfigurationMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *ExecuteBatchMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if len(m.Messages) > 0 {
		for _, e := range m.Messages {
			l = e.Size()
			n += 1 + l + sovCodec(uint64(l))
		}
	}
	return n
}

func (m *ExecuteBatchMsg_Union) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.Sum != nil {
		n += m.Sum.Size()
	}
	return n
}

func (m *ExecuteBatchMsg_Union_CashSendMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.CashSendMsg != nil {
		l = m.CashSendMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *ExecuteBatchMsg_Union_RemittanceCreateMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceCreateMsg != nil {
		l = m.RemittanceCreateMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *ExecuteBatchMsg_Union_RemittanceClaimMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceClaimMsg != nil {
		l = m.RemittanceClaimMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *ExecuteBatchMsg_Union_RemittanceReclaimMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceReclaimMsg != nil {
		l = m.RemittanceReclaimMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *ExecuteBatchMsg_Union_RemittanceWithdrawFeesMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	var l int
	_ = l
	if m.RemittanceWithdrawFeesMsg != nil {
		l = m.RemittanceWithdrawFeesMsg.Size()
		n += 2 + l + sovCodec(uint64(l))
	}
	return n
}

func sovCodec(x uint64) (n int) {
	for {
		n++
		x >>= 7
		if x == 0 {
			break
		}
	}
	return n
}

func sozCodec(x uint64) (n int) {
	return sovCodec(uint64((x << 1) ^ uint64((int64(x) >> 63))))
}

func (m *Tx) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= (uint64(b) & 0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: Tx: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: Tx: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 1:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Signatures", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			m.Signatures = append(m.Signatures, &sigs.StdSignature{})
			if err := m.Signatures[len(m.Signatures)-1].Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			iNdEx = postIndex
		case 51:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field CashSendMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &cash.SendMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_CashSendMsg{v}
			iNdEx = postIndex
		case 52:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field ExecuteBatchMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &ExecuteBatchMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_ExecuteBatchMsg{v}
			iNdEx = postIndex
		case 53:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field MigrationUpgradeSchemaMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &migration.UpgradeSchemaMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_MigrationUpgradeSchemaMsg{v}
			iNdEx = postIndex
		case 54:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field SigsBumpSequenceMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &sigs.BumpSequenceMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_SigsBumpSequenceMsg{v}
			iNdEx = postIndex
		case 55:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field CashUpdateConfigurationMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &cash.UpdateConfigurationMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_CashUpdateConfigurationMsg{v}
			iNdEx = postIndex
		case 56:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field GuardSetPausedMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &guard.SetPausedMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_GuardSetPausedMsg{v}
			iNdEx = postIndex
		case 57:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field GuardUpdateConfigurationMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &guard.UpdateConfigurationMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_GuardUpdateConfigurationMsg{v}
			iNdEx = postIndex
		case 58:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceCreateMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.CreateMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_RemittanceCreateMsg{v}
			iNdEx = postIndex
		case 59:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceClaimMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.ClaimMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_RemittanceClaimMsg{v}
			iNdEx = postIndex
		case 60:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceReclaimMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.ReclaimMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_RemittanceReclaimMsg{v}
			iNdEx = postIndex
		case 61:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceWithdrawFeesMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.WithdrawFeesMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_RemittanceWithdrawFeesMsg{v}
			iNdEx = postIndex
		case 62:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceUpdateConfigurationMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.UpdateConfigurationMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &Tx_RemittanceUpdateConfigurationMsg{v}
			iNdEx = postIndex
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}

	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (m *ExecuteBatchMsg) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= (uint64(b) & 0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: ExecuteBatchMsg: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: ExecuteBatchMsg: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 1:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Messages", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			m.Messages = append(m.Messages, ExecuteBatchMsg_Union{})
			if err := m.Messages[len(m.Messages)-1].Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			iNdEx = postIndex
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}

	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func (m *ExecuteBatchMsg_Union) Unmarshal(dAtA []byte) error {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		preIndex := iNdEx
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= (uint64(b) & 0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		if wireType == 4 {
			return fmt.Errorf("proto: ExecuteBatchMsg_Union: wiretype end group for non-group")
		}
		if fieldNum <= 0 {
			return fmt.Errorf("proto: ExecuteBatchMsg_Union: illegal tag %d (wire type %d)", fieldNum, wire)
		}
		switch fieldNum {
		case 51:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field CashSendMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &cash.SendMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &ExecuteBatchMsg_Union_CashSendMsg{v}
			iNdEx = postIndex
		case 58:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceCreateMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.CreateMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &ExecuteBatchMsg_Union_RemittanceCreateMsg{v}
			iNdEx = postIndex
		case 59:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceClaimMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.ClaimMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &ExecuteBatchMsg_Union_RemittanceClaimMsg{v}
			iNdEx = postIndex
		case 60:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceReclaimMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.ReclaimMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &ExecuteBatchMsg_Union_RemittanceReclaimMsg{v}
			iNdEx = postIndex
		case 61:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field RemittanceWithdrawFeesMsg", wireType)
			}
			var msglen int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				msglen |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if msglen < 0 {
				return ErrInvalidLengthCodec
			}
			postIndex := iNdEx + msglen
			if postIndex < 0 {
				return ErrInvalidLengthCodec
			}
			if postIndex > l {
				return io.ErrUnexpectedEOF
			}
			v := &remittance.WithdrawFeesMsg{}
			if err := v.Unmarshal(dAtA[iNdEx:postIndex]); err != nil {
				return err
			}
			m.Sum = &ExecuteBatchMsg_Union_RemittanceWithdrawFeesMsg{v}
			iNdEx = postIndex
		default:
			iNdEx = preIndex
			skippy, err := skipCodec(dAtA[iNdEx:])
			if err != nil {
				return err
			}
			if skippy < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) < 0 {
				return ErrInvalidLengthCodec
			}
			if (iNdEx + skippy) > l {
				return io.ErrUnexpectedEOF
			}
			iNdEx += skippy
		}
	}

	if iNdEx > l {
		return io.ErrUnexpectedEOF
	}
	return nil
}

func skipCodec(dAtA []byte) (n int, err error) {
	l := len(dAtA)
	iNdEx := 0
	for iNdEx < l {
		var wire uint64
		for shift := uint(0); ; shift += 7 {
			if shift >= 64 {
				return 0, ErrIntOverflowCodec
			}
			if iNdEx >= l {
				return 0, io.ErrUnexpectedEOF
			}
			b := dAtA[iNdEx]
			iNdEx++
			wire |= (uint64(b) & 0x7F) << shift
			if b < 0x80 {
				break
			}
		}
		wireType := int(wire & 0x7)
		switch wireType {
		case 0:
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return 0, ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return 0, io.ErrUnexpectedEOF
				}
				iNdEx++
				if dAtA[iNdEx-1] < 0x80 {
					break
				}
			}
			return iNdEx, nil
		case 1:
			iNdEx += 8
			return iNdEx, nil
		case 2:
			var length int
			for shift := uint(0); ; shift += 7 {
				if shift >= 64 {
					return 0, ErrIntOverflowCodec
				}
				if iNdEx >= l {
					return 0, io.ErrUnexpectedEOF
				}
				b := dAtA[iNdEx]
				iNdEx++
				length |= (int(b) & 0x7F) << shift
				if b < 0x80 {
					break
				}
			}
			if length < 0 {
				return 0, ErrInvalidLengthCodec
			}
			iNdEx += length
			if iNdEx < 0 {
				return 0, ErrInvalidLengthCodec
			}
			return iNdEx, nil
		case 3:
			for {
				var innerWire uint64
				var start int = iNdEx
				for shift := uint(0); ; shift += 7 {
					if shift >= 64 {
						return 0, ErrIntOverflowCodec
					}
					if iNdEx >= l {
						return 0, io.ErrUnexpectedEOF
					}
					b := dAtA[iNdEx]
					iNdEx++
					innerWire |= (uint64(b) & 0x7F) << shift
					if b < 0x80 {
						break
					}
				}
				innerWireType := int(innerWire & 0x7)
				if innerWireType == 4 {
					break
				}
				next, err := skipCodec(dAtA[start:])
				if err != nil {
					return 0, err
				}
				iNdEx = start + next
				if iNdEx < 0 {
					return 0, ErrInvalidLengthCodec
				}
			}
			return iNdEx, nil
		case 4:
			return iNdEx, nil
		case 5:
			iNdEx += 4
			return iNdEx, nil
		default:
			return 0, fmt.Errorf("proto: illegal wireType %d", wireType)
		}
	}
	panic("unreachable")
}

var (
	ErrInvalidLengthCodec = fmt.Errorf("proto: negative length found during unmarshaling")
	ErrIntOverflowCodec   = fmt.Errorf("proto: integer overflow")
)
