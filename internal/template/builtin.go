package template

// CommercialOffer is the built-in commercial offer template for the
// Kazakhstani market. It exercises every section kind.
func CommercialOffer() *Template {
	return &Template{
		ID:          "commercial-offer-kz",
		Name:        "Коммерческое предложение",
		Description: "Шаблон коммерческого предложения для казахстанского рынка",
		Variables: []Variable{
			{ID: "companyName", Name: "Название компании", Type: VarText, Required: true,
				Placeholder: `ТОО "Название компании"`, Description: "Полное наименование вашей компании"},
			{ID: "companyCity", Name: "Город компании", Type: VarText, Required: true,
				Placeholder: "Алматы", Description: "Город, где находится компания"},
			{ID: "companyPhone", Name: "Телефон компании", Type: VarPhone, Required: true,
				Placeholder: "+7 (777) 123-45-67", Description: "Контактный телефон"},
			{ID: "companyAddress", Name: "Адрес компании", Type: VarText, Required: true,
				Placeholder: "ул. Абая, 150", Description: "Физический адрес компании"},
			{ID: "companyEmail", Name: "E-Mail компании", Type: VarEmail, Required: true,
				Placeholder: "info@company.kz", Description: "Электронная почта для связи"},
			{ID: "companyBIN", Name: "БИН компании", Type: VarText, Required: true,
				Placeholder: "123456789012", Description: "Бизнес-идентификационный номер"},
			{ID: "clientCompanyName", Name: "Название компании для КП", Type: VarText, Required: true,
				Placeholder: `ТОО "Клиент"`, Description: "Название компании, для которой готовится КП"},
			{ID: "authorPosition", Name: "Должность автора КП", Type: VarText, Required: true,
				Placeholder: "Директор", Description: "Должность лица, подписывающего КП"},
			{ID: "authorName", Name: "ФИО автора КП", Type: VarText, Required: true,
				Placeholder: "Иванов И.И.", Description: "Полное имя автора КП"},
			{ID: "offerDate", Name: "Дата КП", Type: VarDate, Required: true,
				Description: "Дата составления коммерческого предложения"},
		},
		Sections: []Section{
			{
				ID: "header", Kind: SectionHeader,
				Content: "Коммерческое предложение",
				Style: TextStyle{
					"fontSize": "24px", "fontWeight": "bold",
					"textAlign": "center", "margin": "20px 0",
				},
			},
			{
				ID: "company-info", Kind: SectionContacts,
				Content: "{{companyName}} {{companyCity}}\n\n" +
					"Телефон: {{companyPhone}} Адрес: {{companyAddress}}\n\n" +
					"E-Mail: {{companyEmail}} БИН: {{companyBIN}}",
				Style: TextStyle{"textAlign": "left", "margin": "20px 0"},
			},
			{
				ID: "divider", Kind: SectionText,
				Content: "___________________________________________________________________________________________",
				Style:   TextStyle{"textAlign": "center", "margin": "10px 0"},
			},
			{
				ID: "client-name", Kind: SectionText,
				Content: "{{clientCompanyName}}",
				Style: TextStyle{
					"textAlign": "center", "fontWeight": "bold",
					"fontSize": "18px", "margin": "20px 0",
				},
			},
			{
				ID: "offer-description", Kind: SectionText,
				Content: "Коммерческое предложение",
				Style: TextStyle{
					"textAlign": "center", "fontWeight": "bold",
					"fontSize": "16px", "margin": "10px 0",
				},
			},
			{
				ID: "offer-intro", Kind: SectionText,
				Content: "{{companyName}} имеет обширный опыт по {{serviceDescription}}. " +
					"Наша компания предлагает услуги по {{serviceType}}",
				Variables: []Variable{
					{ID: "serviceDescription", Name: "Описание услуг компании", Type: VarText, Required: true,
						Placeholder: "разработке программного обеспечения", Description: "Краткое описание основной деятельности"},
					{ID: "serviceType", Name: "Тип предлагаемых услуг", Type: VarText, Required: true,
						Placeholder: "созданию веб-приложений и мобильных решений", Description: "Конкретные услуги, которые вы предлагаете"},
				},
			},
			{
				ID: "services-table", Kind: SectionTable,
				Content: "Предлагаемая позиция услуг или товаров",
				TableColumns: []TableColumn{
					{ID: "number", Name: "#", Type: VarNumber},
					{ID: "service", Name: "Наименование", Type: VarText, Editable: true},
					{ID: "cost", Name: "Стоимость, тенге (без НДС)", Type: VarCurrency, Editable: true},
				},
				TableRows: []TableRow{
					{"id": "row-1", "number": 1, "service": "Предлагаемая позиция услуг или товаров", "cost": "Стоимость"},
				},
				Style: TextStyle{"margin": "20px 0"},
			},
			{
				ID: "total-row", Kind: SectionTable,
				Content: "Итого",
				TableColumns: []TableColumn{
					{ID: "label", Name: "Итого:", Type: VarText},
					{ID: "total", Name: "Итоговая сумма", Type: VarCurrency, Formula: "SUM(services-table.cost)"},
				},
				TableRows: []TableRow{
					{"id": "total-row", "label": "Итого:", "total": "{{totalAmount}}"},
				},
				Variables: []Variable{
					{ID: "totalAmount", Name: "Итоговая сумма", Type: VarNumber, Required: false,
						Description: "Автоматически рассчитывается из таблицы услуг"},
				},
			},
			{
				ID: "closing-text", Kind: SectionText,
				Content: "С наилучшими пожеланиями,",
				Style:   TextStyle{"margin": "30px 0 10px 0"},
			},
			{
				ID: "signature", Kind: SectionSignature,
				Content: "{{authorPosition}} {{companyName}} {{authorName}}",
				Style:   TextStyle{"margin": "10px 0"},
			},
			{
				ID: "date", Kind: SectionText,
				Content: "{{offerDate}}",
				Style:   TextStyle{"margin": "10px 0"},
			},
		},
	}
}

// Invoice is the built-in payment invoice template. Its beneficiary and
// bank-details tables use non-editable label columns, a layout the other
// built-ins don't exercise.
func Invoice() *Template {
	return &Template{
		ID:          "invoice",
		Name:        "Счет на оплату",
		Description: "Шаблон счета на оплату",
		Variables: []Variable{
			{ID: "beneficiaryName", Name: "Имя поставщика", Type: VarText, Required: true,
				Placeholder: `ТОО "Поставщик"`},
			{ID: "beneficiaryBIN", Name: "БИН поставщика", Type: VarText, Required: true,
				Placeholder: "123456789012"},
			{ID: "beneficiaryIBAN", Name: "IBAN поставщика", Type: VarText, Required: true,
				Placeholder: "KZ123456789012345678"},
			{ID: "beneficiaryBankName", Name: "Название банка бенефициара", Type: VarText, Required: true,
				Placeholder: `АО "Банк Поставщика"`},
			{ID: "beneficiaryKBE", Name: "КБЕ Банка бенефициара", Type: VarText, Required: true,
				Placeholder: "17"},
			{ID: "beneficiaryBIC", Name: "БИК банка бенефициара", Type: VarText, Required: true,
				Placeholder: "ASDFKZKA"},
			{ID: "paymentPurpose", Name: "Назначение платежа", Type: VarText, Required: true,
				Placeholder: "Оплата за услуги"},
			{ID: "invoiceNumber", Name: "Номер счета", Type: VarText, Required: true,
				Placeholder: "№12345"},
			{ID: "invoiceDate", Name: "Дата создания счета", Type: VarDate, Required: true},
			{ID: "supplierAddress", Name: "Адрес поставщика", Type: VarText, Required: true,
				Placeholder: "ул. Абая, 1"},
			{ID: "supplierPhone", Name: "Телефон(ы) поставщика", Type: VarPhone, Required: true,
				Placeholder: "+7 (777) 111-22-33"},
			{ID: "buyerBIN", Name: "БИН/ИИН покупателя", Type: VarText, Required: true,
				Placeholder: "123456789012"},
			{ID: "buyerName", Name: "Имя покупателя", Type: VarText, Required: true,
				Placeholder: `ТОО "Покупатель"`},
			{ID: "buyerAddress", Name: "Адрес покупателя", Type: VarText, Required: true,
				Placeholder: "ул. Ленина, 10"},
			{ID: "buyerPhone", Name: "Телефон(ы) покупателя", Type: VarPhone, Required: true,
				Placeholder: "+7 (777) 444-55-66"},
			{ID: "contractNumber", Name: "Номер договора", Type: VarText,
				Placeholder: "№Д-123"},
			{ID: "contractDate", Name: "Дата заключения договора", Type: VarDate},
			{ID: "totalAmount", Name: "Итоговая сумма", Type: VarNumber, Required: true,
				Placeholder: "100000"},
			{ID: "vatSum", Name: "Сумма с НДС", Type: VarNumber,
				Placeholder: "12000"},
			{ID: "totalAmountInWords", Name: "Итоговая сумма (прописью)", Type: VarText, Required: true,
				Placeholder: "Сто тысяч тенге 00 тиын"},
			{ID: "executorFullName", Name: "ФИО исполнителя", Type: VarText, Required: true,
				Placeholder: "Исполнитель И.И."},
		},
		Sections: []Section{
			{
				ID: "beneficiary-table-header", Kind: SectionTable,
				TableColumns: []TableColumn{
					{ID: "label1", Name: "Бенефициар:", Type: VarText},
					{ID: "label2", Name: "БИН:", Type: VarText},
					{ID: "label3", Name: "ИИК:", Type: VarText},
				},
				TableRows: []TableRow{
					{"id": "beneficiary-row-1",
						"label1": "{{beneficiaryName}}",
						"label2": "{{beneficiaryBIN}}",
						"label3": "{{beneficiaryIBAN}}"},
				},
				Style: TextStyle{"marginBottom": "10px"},
			},
			{
				ID: "bank-details-table-header", Kind: SectionTable,
				TableColumns: []TableColumn{
					{ID: "label1", Name: "Банк бенефициара:", Type: VarText},
					{ID: "label2", Name: "КБе:", Type: VarText},
					{ID: "label3", Name: "БИК:", Type: VarText},
					{ID: "label4", Name: "Код назначения платежа:", Type: VarText},
				},
				TableRows: []TableRow{
					{"id": "bank-details-row-1",
						"label1": "{{beneficiaryBankName}}",
						"label2": "{{beneficiaryKBE}}",
						"label3": "{{beneficiaryBIC}}",
						"label4": "{{paymentPurpose}}"},
				},
				Style: TextStyle{"marginBottom": "20px"},
			},
			{
				ID: "invoice-title", Kind: SectionText,
				Content: "Счет на оплату № {{invoiceNumber}} от {{invoiceDate}}",
				Style:   TextStyle{"fontSize": "14px", "fontWeight": "bold", "marginBottom": "20px"},
			},
			{
				ID: "supplier-details", Kind: SectionText,
				Content: "Поставщик: БИН / ИИН {{beneficiaryBIN}}\n({{beneficiaryName}})\n" +
					"{{supplierAddress}}\nтел.: {{supplierPhone}}",
				Style: TextStyle{"marginBottom": "10px"},
			},
			{
				ID: "buyer-details", Kind: SectionText,
				Content: "Покупатель: БИН / ИИН {{buyerBIN}}\n({{buyerName}})\n" +
					"{{buyerAddress}}\nтел.: {{buyerPhone}}",
				Style: TextStyle{"marginBottom": "10px"},
			},
			{
				ID: "contract-details", Kind: SectionText,
				Content: "Договор: Договор № {{contractNumber}} от {{contractDate}}",
				Style:   TextStyle{"marginBottom": "20px"},
			},
			{
				ID: "items-table", Kind: SectionTable,
				TableColumns: []TableColumn{
					{ID: "num", Name: "№", Type: VarNumber},
					{ID: "name", Name: "Наименование", Type: VarText, Editable: true},
					{ID: "qty", Name: "Кол-во", Type: VarNumber, Editable: true},
					{ID: "unit", Name: "Ед.", Type: VarText, Editable: true},
					{ID: "price", Name: "Цена", Type: VarCurrency, Editable: true},
					{ID: "amount", Name: "Сумма", Type: VarCurrency, Editable: true},
				},
				TableRows: []TableRow{
					{"id": "item-1", "num": 1, "name": "Наименование позиции",
						"qty": 1, "unit": "шт.", "price": 100000, "amount": 100000},
				},
				Style: TextStyle{"marginBottom": "10px"},
			},
			{
				ID: "total-summary", Kind: SectionText,
				Content: "Итого: Итоговая сумма\nВ том числе НДС: {{vatSum}} тенге",
				Style:   TextStyle{"textAlign": "right", "fontWeight": "bold", "marginBottom": "10px"},
			},
			{
				ID: "total-in-words", Kind: SectionText,
				Content: "Всего наименований 1 на сумму {{totalAmount}} KZT\n" +
					"Всего к оплате: {{totalAmountInWords}} тенге",
				Style: TextStyle{"marginBottom": "20px"},
			},
			{
				ID: "executor-signature", Kind: SectionText,
				Content: "Исполнитель: {{executorFullName}}",
				Style:   TextStyle{"fontWeight": "bold"},
			},
		},
	}
}

// BuiltinTemplates lists the templates shipped with the engine.
func BuiltinTemplates() []*Template {
	return []*Template{CommercialOffer(), Invoice(), ServiceAgreement()}
}

// BuiltinByID finds a shipped template.
func BuiltinByID(id string) (*Template, bool) {
	for _, t := range BuiltinTemplates() {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
