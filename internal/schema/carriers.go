package schema

import "commis/internal/domain"

// requiredFields is shared by all carriers: a row without an agent, an
// amount, and a paid period cannot become a canonical record.
var requiredFields = map[string]bool{
	FieldAgent:  true,
	FieldAmount: true,
	FieldPeriod: true,
}

// Blank header cells are labeled "Column N" (1-based) by the reader; some
// carrier exports carry the internally-assigned agent in an unlabeled
// trailing column.
var builtinSchemas = []CarrierSchema{
	{
		Carrier:         domain.CarrierMolina,
		Required:        requiredFields,
		ExpectedColumns: 18,
		Fields: []FieldMapping{
			{Canonical: FieldAgent, Headers: []string{"Agente", "Agent", "Assigned Agent"}},
			{Canonical: FieldAmount, Headers: []string{"Amount"}},
			{Canonical: FieldPeriod, Headers: []string{"Mes Pagado", "Commission Month"}},
			{Canonical: FieldTxType, Headers: []string{"Transaction Type"}},
			{Canonical: "generated_from", Headers: []string{"Generated From"}},
			{Canonical: "payment_date", Headers: []string{"Payment Date"}},
			{Canonical: "payee_name", Headers: []string{"PayeeName", "Payee Name"}},
			{Canonical: "payee_npn", Headers: []string{"NPN"}},
			{Canonical: "statement_date", Headers: []string{"Statement Date"}},
			{Canonical: "product", Headers: []string{"Product"}},
			{Canonical: "policy_number", Headers: []string{"Policy"}},
			{Canonical: "insured_name", Headers: []string{"Insured"}},
			{Canonical: "effective_date", Headers: []string{"Effective Date"}},
			{Canonical: "writing_agent", Headers: []string{"WritingAgent", "Writing Agent"}},
			{Canonical: "writing_agent_number", Headers: []string{"Writing Agent Number"}},
			{Canonical: "new_to_medicare", Headers: []string{"NewToMedicare"}},
			{Canonical: "carrier_transaction_type", Headers: []string{"Carrier Transaction Type"}},
			{Canonical: "member_count", Headers: []string{"Member Count"}},
		},
	},
	{
		Carrier:         domain.CarrierAmbetter,
		Required:        requiredFields,
		ExpectedColumns: 18,
		Fields: []FieldMapping{
			// Ambetter exports put the assigned agent in an unlabeled 19th column.
			{Canonical: FieldAgent, Headers: []string{"Agente", "Agent", "Assigned Agent", "Column 19"}},
			{Canonical: FieldAmount, Headers: []string{"Amount"}},
			// No commission-month column; the paid period is the month of the payment date.
			{Canonical: FieldPeriod, Headers: []string{"Payment Date"}},
			{Canonical: FieldTxType, Headers: []string{"TransactionType", "Transaction Type"}},
			{Canonical: "generated_from", Headers: []string{"Generated From"}},
			{Canonical: "payment_date", Headers: []string{"Payment Date"}},
			{Canonical: "payee_name", Headers: []string{"PayeeName", "Payee Name"}},
			{Canonical: "payee_npn", Headers: []string{"NPN"}},
			{Canonical: "statement_date", Headers: []string{"Statement Date"}},
			{Canonical: "product", Headers: []string{"Product"}},
			{Canonical: "policy_number", Headers: []string{"Policy"}},
			{Canonical: "insured_name", Headers: []string{"Insured"}},
			{Canonical: "effective_date", Headers: []string{"Effective Date"}},
			{Canonical: "payout_type", Headers: []string{"PayoutType", "Payout Type"}},
			{Canonical: "writing_agent", Headers: []string{"Writing Agent", "WritingAgent"}},
			{Canonical: "writing_agent_number", Headers: []string{"Writing Agent Number"}},
			{Canonical: "new_to_medicare", Headers: []string{"NewToMedicare"}},
			{Canonical: "carrier_transaction_type", Headers: []string{"Carrier Transaction Type"}},
			{Canonical: "member_count", Headers: []string{"Member Count"}},
		},
	},
	{
		Carrier:         domain.CarrierAetna,
		Required:        requiredFields,
		ExpectedColumns: 16,
		Fields: []FieldMapping{
			// Aetna statements carry no internal assignment column; the
			// writing agent is the agent of record.
			{Canonical: FieldAgent, Headers: []string{"WritingAgent", "Writing Agent", "Agente"}},
			{Canonical: FieldAmount, Headers: []string{"Amount"}},
			{Canonical: FieldPeriod, Headers: []string{"Payment Date"}},
			{Canonical: FieldTxType, Headers: []string{"Transaction Type", "TransactionType"}},
			{Canonical: "generated_from", Headers: []string{"Generated From"}},
			{Canonical: "payment_date", Headers: []string{"Payment Date"}},
			{Canonical: "payee_name", Headers: []string{"PayeeName", "Payee Name"}},
			{Canonical: "statement_date", Headers: []string{"Statement Date"}},
			{Canonical: "product", Headers: []string{"Product"}},
			{Canonical: "policy_number", Headers: []string{"Policy"}},
			{Canonical: "insured_name", Headers: []string{"Insured"}},
			{Canonical: "effective_date", Headers: []string{"Effective Date"}},
			{Canonical: "payout_type", Headers: []string{"Payout Type", "PayoutType"}},
			{Canonical: "writing_agent_number", Headers: []string{"WritingAgentNumber", "Writing Agent Number"}},
			{Canonical: "new_to_medicare", Headers: []string{"NewToMedicare"}},
			{Canonical: "carrier_transaction_type", Headers: []string{"CarrierTransactionType", "Carrier Transaction Type"}},
			{Canonical: "member_count", Headers: []string{"Member Count"}},
		},
	},
	{
		Carrier:         domain.CarrierOscar,
		Required:        requiredFields,
		ExpectedColumns: 12,
		Fields: []FieldMapping{
			// Oscar exports put the assigned agent in an unlabeled 13th column.
			{Canonical: FieldAgent, Headers: []string{"Agente", "Agent", "Assigned Agent", "Column 13"}},
			{Canonical: FieldAmount, Headers: []string{"Commission"}},
			{Canonical: FieldPeriod, Headers: []string{"Commission month", "Commission Month"}},
			{Canonical: FieldTxType, Headers: []string{"Commission type", "Commission Type"}},
			{Canonical: "commission_type", Headers: []string{"Commission type", "Commission Type"}},
			{Canonical: "payee_name", Headers: []string{"Payee name", "Payee Name"}},
			{Canonical: "payee_type", Headers: []string{"Payee type", "Payee Type"}},
			{Canonical: "payee_npn", Headers: []string{"Payee NPN"}},
			{Canonical: "member_id", Headers: []string{"Member ID"}},
			{Canonical: "insured_name", Headers: []string{"Subscriber name", "Subscriber Name"}},
			{Canonical: "state", Headers: []string{"State"}},
			{Canonical: "lives", Headers: []string{"Lives"}},
			{Canonical: "effective_date", Headers: []string{"Effective Date"}},
			{Canonical: "block_reason", Headers: []string{"Block Reason"}},
		},
	},
}
