package template

// ServiceAgreement is the built-in service agreement contract under the
// law of the Republic of Kazakhstan. It is the largest shipped template:
// ten numbered chapters of legal text plus a two-party requisites table.
func ServiceAgreement() *Template {
	return &Template{
		ID:          "service-agreement",
		Name:        "Договор возмездного оказания услуг",
		Description: "Шаблон договора возмездного оказания услуг",
		Variables: []Variable{
			{ID: "agreementNumber", Name: "Номер договора", Type: VarText, Required: true,
				Placeholder: "№123/2025"},
			{ID: "agreementDate", Name: "Дата договора", Type: VarDate, Required: true},
			{ID: "placeOfAgreement", Name: "Место составления договора", Type: VarText, Required: true,
				Placeholder: "г. Алматы"},
			{ID: "customerCompany", Name: "Наименование Заказчика (компания)", Type: VarText, Required: true,
				Placeholder: `ТОО "Заказчик"`},
			{ID: "customerRepresentativePosition", Name: "Должность представителя Заказчика", Type: VarText, Required: true,
				Placeholder: "Директор"},
			{ID: "customerRepresentativeName", Name: "ФИО представителя Заказчика", Type: VarText, Required: true,
				Placeholder: "Иванов И.И."},
			{ID: "customerRepresentativeBasis", Name: "Основание представителя Заказчика", Type: VarText, Required: true,
				Placeholder: "Устава"},
			{ID: "customerBIN", Name: "БИН Заказчика", Type: VarText, Required: true,
				Placeholder: "123456789012"},
			{ID: "serviceProviderCompany", Name: "Наименование Исполнителя (компания)", Type: VarText, Required: true,
				Placeholder: `ТОО "Исполнитель"`},
			{ID: "serviceProviderRepresentativePosition", Name: "Должность представителя Исполнителя", Type: VarText, Required: true,
				Placeholder: "Директор"},
			{ID: "serviceProviderRepresentativeName", Name: "ФИО представителя Исполнителя", Type: VarText, Required: true,
				Placeholder: "Петров П.П."},
			{ID: "serviceProviderRepresentativeBasis", Name: "Основание представителя Исполнителя", Type: VarText, Required: true,
				Placeholder: "Устава"},
			{ID: "serviceProviderBIN", Name: "БИН Исполнителя", Type: VarText, Required: true,
				Placeholder: "123456789012"},
			{ID: "serviceDescription", Name: "Описание услуг", Type: VarText, Required: true,
				Placeholder: "по разработке программного обеспечения"},
			{ID: "applicationNumber", Name: "Номер Приложения", Type: VarNumber, Required: true,
				Placeholder: "1"},
			{ID: "startDate", Name: "Дата начала оказания услуг", Type: VarDate, Required: true},
			{ID: "endDate", Name: "Дата завершения оказания услуг", Type: VarDate, Required: true},
			{ID: "materialApplicationNumber", Name: "Номер Приложения для материалов", Type: VarNumber,
				Placeholder: "2"},
			{ID: "notificationDays", Name: "Дни извещения (приемка услуг)", Type: VarNumber, Required: true,
				Placeholder: "3"},
			{ID: "actSignDays", Name: "Дни подписания акта", Type: VarNumber, Required: true,
				Placeholder: "5"},
			{ID: "terminationActSignDays", Name: "Дни подписания акта (при расторжении)", Type: VarNumber, Required: true,
				Placeholder: "7"},
			{ID: "terminationPaymentDays", Name: "Дни оплаты (при расторжении)", Type: VarNumber, Required: true,
				Placeholder: "10"},
			{ID: "totalCost", Name: "Общая стоимость услуг", Type: VarNumber, Required: true,
				Placeholder: "100000"},
			{ID: "vatPercentage", Name: "Процент НДС", Type: VarNumber, Required: true,
				Placeholder: "12"},
			{ID: "vatAmount", Name: "Сумма НДС", Type: VarNumber, Required: true,
				Placeholder: "12000"},
			{ID: "prepaymentDays", Name: "Дни предварительной оплаты", Type: VarNumber, Required: true,
				Placeholder: "5"},
			{ID: "latePaymentPenaltyPercent", Name: "Процент неустойки за просрочку оплаты", Type: VarNumber, Required: true,
				Placeholder: "0.1"},
			{ID: "serviceDisruptionPenaltyPercent", Name: "Процент неустойки за нарушение сроков", Type: VarNumber, Required: true,
				Placeholder: "0.5"},
			{ID: "confidentialityYears", Name: "Срок конфиденциальности (лет)", Type: VarNumber, Required: true,
				Placeholder: "3"},
			{ID: "terminationNotificationDaysProvider", Name: "Дни извещения о расторжении (Исполнитель)", Type: VarNumber, Required: true,
				Placeholder: "10"},
			{ID: "terminationNotificationDaysCustomer", Name: "Дни извещения о расторжении (Заказчик)", Type: VarNumber, Required: true,
				Placeholder: "15"},
			{ID: "customerLegalName", Name: "Наименование юридического лица заказчика", Type: VarText, Required: true,
				Placeholder: `ТОО "Юр.лицо Заказчика"`},
			{ID: "customerAddress", Name: "Адрес заказчика", Type: VarText, Required: true,
				Placeholder: "ул. Примерная, 1"},
			{ID: "customerPhoneFax", Name: "Телефон/факс заказчика", Type: VarPhone, Required: true,
				Placeholder: "+7 (777) 111-22-33"},
			{ID: "customerIIK", Name: "ИИК заказчика", Type: VarText, Required: true,
				Placeholder: "KZ123456789012345678"},
			{ID: "customerIBAN", Name: "IBAN заказчика", Type: VarText, Required: true,
				Placeholder: "KZ123456789012345678"},
			{ID: "customerBankName", Name: "Наименование банка заказчика", Type: VarText, Required: true,
				Placeholder: `АО "Банк Заказчика"`},
			{ID: "customerBIC", Name: "БИК Заказчика", Type: VarText, Required: true,
				Placeholder: "ASDFKZKA"},
			{ID: "customerKBE", Name: "КБе Заказчика", Type: VarText, Required: true,
				Placeholder: "19"},
			{ID: "customerPosition", Name: "Должность заказчика", Type: VarText, Required: true,
				Placeholder: "Директор"},
			{ID: "customerFullName", Name: "ФИО заказчика", Type: VarText, Required: true,
				Placeholder: "Иванов И.И."},
			{ID: "serviceProviderLegalName", Name: "Наименование юридического лица исполнителя", Type: VarText, Required: true,
				Placeholder: `ТОО "Юр.лицо Исполнителя"`},
			{ID: "serviceProviderAddress", Name: "Адрес исполнителя", Type: VarText, Required: true,
				Placeholder: "ул. Другая, 2"},
			{ID: "serviceProviderPhoneFax", Name: "Телефон/факс исполнителя", Type: VarPhone, Required: true,
				Placeholder: "+7 (777) 444-55-66"},
			{ID: "serviceProviderIIK", Name: "ИИК исполнителя", Type: VarText, Required: true,
				Placeholder: "KZ987654321098765432"},
			{ID: "serviceProviderIBAN", Name: "IBAN исполнителя", Type: VarText, Required: true,
				Placeholder: "KZ987654321098765432"},
			{ID: "serviceProviderBankName", Name: "Наименование банка исполнителя", Type: VarText, Required: true,
				Placeholder: `АО "Банк Исполнителя"`},
			{ID: "serviceProviderBIC", Name: "БИК Исполнителя", Type: VarText, Required: true,
				Placeholder: "QWERTYUI"},
			{ID: "serviceProviderKBE", Name: "КБе Исполнителя", Type: VarText, Required: true,
				Placeholder: "17"},
			{ID: "serviceProviderPosition", Name: "Должность исполнителя", Type: VarText, Required: true,
				Placeholder: "Директор"},
			{ID: "serviceProviderFullName", Name: "ФИО исполнителя", Type: VarText, Required: true,
				Placeholder: "Петров П.П."},
		},
		Sections: append(append([]Section{
			{
				ID: "agreement-title", Kind: SectionText,
				Content: "Договор возмездного оказания услуг № {{agreementNumber}}",
				Style:   TextStyle{"textAlign": "center", "fontWeight": "bold", "fontSize": "14px", "marginBottom": "5px"},
			},
			{
				ID: "agreement-date-place", Kind: SectionText,
				Content: "{{placeOfAgreement}} «{{agreementDate}}» года",
				Style:   TextStyle{"textAlign": "center", "fontSize": "14px", "marginBottom": "20px"},
			},
			{
				ID: "parties-intro", Kind: SectionText,
				Content: "{{customerCompany}}, которое представляет {{customerRepresentativePosition}} " +
					"{{customerRepresentativeName}}, действующего на основании {{customerRepresentativeBasis}}, " +
					"БИН {{customerBIN}}, именуемое в дальнейшем «Заказчик» с одной стороны и " +
					"{{serviceProviderCompany}}, которое представляет {{serviceProviderRepresentativePosition}} " +
					"{{serviceProviderRepresentativeName}}, действующего на основании " +
					"{{serviceProviderRepresentativeBasis}}, БИН {{serviceProviderBIN}}, именуемое в дальнейшем " +
					"«Исполнитель» с другой стороны, далее совместно именуемые «Стороны», заключили настоящий " +
					"договор (далее - «Договор») о нижеследующем:",
			},
		}, agreementClauses()...),
			Section{
				ID: "requisites-table", Kind: SectionTable,
				TableColumns: []TableColumn{
					{ID: "customer", Name: "Заказчик:", Type: VarText},
					{ID: "serviceProvider", Name: "Исполнитель:", Type: VarText},
				},
				TableRows: []TableRow{
					{"id": "row-1",
						"customer":        "Наименование юридического лица заказчика\n{{customerLegalName}}",
						"serviceProvider": "Наименование юридического лица исполнителя\n{{serviceProviderLegalName}}"},
					{"id": "row-2",
						"customer":        "адрес: {{customerAddress}}",
						"serviceProvider": "адрес: {{serviceProviderAddress}}"},
					{"id": "row-3",
						"customer":        "тел./факс: {{customerPhoneFax}}",
						"serviceProvider": "тел./факс: {{serviceProviderPhoneFax}}"},
					{"id": "row-4",
						"customer":        "БИН {{customerBIN}}",
						"serviceProvider": "БИН {{serviceProviderBIN}}"},
					{"id": "row-5",
						"customer":        "ИИК {{customerIIK}}",
						"serviceProvider": "ИИК {{serviceProviderIIK}}"},
					{"id": "row-6",
						"customer":        "IBAN {{customerIBAN}}",
						"serviceProvider": "IBAN {{serviceProviderIBAN}}"},
					{"id": "row-7",
						"customer":        "в {{customerBankName}}",
						"serviceProvider": "в {{serviceProviderBankName}}"},
					{"id": "row-8",
						"customer":        "БИК {{customerBIC}}",
						"serviceProvider": "БИК {{serviceProviderBIC}}"},
					{"id": "row-9",
						"customer":        "КБе {{customerKBE}}",
						"serviceProvider": "КБе {{serviceProviderKBE}}"},
					{"id": "row-10",
						"customer":        "Должность заказчика\n{{customerPosition}}",
						"serviceProvider": "Должность исполнителя\n{{serviceProviderPosition}}"},
					{"id": "row-11",
						"customer":        "ФИО заказчика\n{{customerFullName}}",
						"serviceProvider": "ФИО исполнителя\n{{serviceProviderFullName}}"},
				},
				Style: TextStyle{"marginBottom": "20px"},
			}),
	}
}

// agreementClauses returns chapters 1-10 of the agreement body. Chapter
// headings are header sections; numbered clauses are plain text, with
// the fine-print notes styled small italic as in the source document.
func agreementClauses() []Section {
	bold := TextStyle{"fontWeight": "bold"}
	note := TextStyle{"fontSize": "10px", "fontStyle": "italic"}

	clause := func(id, content string) Section {
		return Section{ID: id, Kind: SectionText, Content: content}
	}
	heading := func(id, content string) Section {
		return Section{ID: id, Kind: SectionHeader, Content: content, Style: bold}
	}

	return []Section{
		heading("subject-title", "1. Предмет Договора"),
		clause("subject-1-1", "1.1. По настоящему Договору Исполнитель обязуется оказать услуги {{serviceDescription}}, а Заказчик обязуется оплатить эти услуги."),
		clause("subject-1-2", "1.2. Детальный перечень оказываемых по настоящему Договору услуг и их характеристики определяются в Приложении № {{applicationNumber}}, которое является неотъемлемой частью настоящего Договора."),
		clause("subject-1-3", "1.3. По настоящему Договору Исполнитель должен оказать соответствующие услуги только лично Заказчику."),
		clause("subject-1-4", "1.4. Услуги оказываются однократно."),
		clause("subject-1-5", "1.5. Исполнитель обязан приступить к оказанию услуг {{startDate}} года и завершить оказание услуг {{endDate}} года."),

		heading("rights-obligations-title", "2. Права и обязанности Сторон"),
		{ID: "service-provider-obligations-title", Kind: SectionText, Content: "2.1.Исполнитель обязуется:", Style: bold},
		clause("service-provider-obligation-1", "2.1.1. оказать услуги с надлежащим качеством и в срок, предусмотренный условиями настоящего Договора;"),
		clause("service-provider-obligation-2", "2.1.2. оказать услуги с соответствии с теми требованиями и характеристиками, которые предусмотрены настоящим Договором;"),
		{ID: "service-provider-note-1", Kind: SectionText, Style: note,
			Content: "Примечание: Если законодательством или нормативно-техническими документами установлены обязательные требования в отношении соответствующих услуг, то услуги должны быть оказаны также с соблюдением таких требований."},
		clause("service-provider-obligation-3", "2.1.3. предоставить в рамках материального обеспечения оказания услуг по настоящему Договору материалы и оборудование, виды и количество которых определяются в Приложении № {{materialApplicationNumber}}, которое является неотъемлемой частью настоящего Договора;"),
		clause("service-provider-obligation-4", "2.1.4. применять все необходимые для осуществления настоящего Договора материалы и оборудование;"),
		clause("service-provider-obligation-5", "2.1.5. соблюдать распорядок, установленный в месте оказания услуги;"),
		clause("service-provider-obligation-6", "2.1.6. предоставлять Заказчику по его запросу информацию о ходе оказания услуг."),
		{ID: "service-provider-rights-title", Kind: SectionText, Content: "2.2.Исполнитель вправе:", Style: bold},
		clause("service-provider-right-1", "2.2.1. не приступать к оказанию услуг до полного исполнения Заказчиком обязанности по частичному обеспечению Исполнителя необходимыми для оказания услуг материалами и оборудованием; срок завершения оказания услуг в этом случае продлевается на время такого простоя Исполнителя;"),
		clause("service-provider-right-2", "2.2.2. обращаться к Заказчику для получения информации, необходимой для оказания услуг;"),
		clause("service-provider-right-3", "2.2.3. привлекать третьих лиц для оказания услуг по настоящему Договору только с письменного согласия Заказчика."),
		{ID: "service-provider-note-2", Kind: SectionText, Style: note,
			Content: "Примечание: если в качестве Исполнителя выступает юридическое лицо, то работники такого юридического лица для целей исполнения настоящего договора не считаются третьими лицами."},
		clause("service-provider-right-4", "2.2.4. оказать услуги досрочно;"),
		clause("service-provider-right-5", "2.2.5. требовать оплаты за оказанные услуги."),
		{ID: "customer-obligations-title", Kind: SectionText, Content: "2.3.Заказчик обязуется:", Style: bold},
		clause("customer-obligation-1", "2.3.1. своевременно предоставить Исполнителю всю необходимую информацию для оказания услуг;"),
		clause("customer-obligation-2", "2.3.2. предоставить Исполнителю беспрепятственный доступ к месту оказания услуг;"),
		{ID: "customer-note-1", Kind: SectionText, Style: note,
			Content: "Примечание: Если услуги должны быть оказаны по месту нахождения Заказчика или иному месту, относящемуся к Заказчику, он обязан предоставить Исполнителю беспрепятственный доступ к месту оказания услуг."},
		clause("customer-obligation-3", "2.3.3. предоставить в рамках материального обеспечения оказания услуг по настоящему Договору материалы и оборудование, виды и количество которых определяются в Приложении № {{materialApplicationNumber}}, которое является неотъемлемой частью настоящего Договора;"),
		clause("customer-obligation-4", "2.3.4. незамедлительно извещать Исполнителя о любых событиях и фактах, имеющих отношение к оказанию услуг или могущих оказать влияние на его выполнение;"),
		clause("customer-obligation-5", "2.3.5. своевременно оплатить стоимость оказанных услуг в соответствии с условиями настоящего Договора;"),
		clause("customer-obligation-6", "2.3.6. подписать акт оказанных услуг кроме случаев, предусмотренных настоящим Договором."),
		{ID: "customer-rights-title", Kind: SectionText, Content: "2.4.Заказчик вправе:", Style: bold},
		clause("customer-right-1", "2.4.1. в любое время проверять ход и качество оказываемых услуг;"),
		clause("customer-right-2", "2.4.2. предъявлять обоснованные возражения в отношении качества и/или полноты оказания услуг;"),
		clause("customer-right-3", "2.4.3. если отступления от условий Договора или иные недостатки результата оказанной услуги в установленный Заказчиком разумный срок не были устранены, либо являются существенными и неустранимыми, отказаться от исполнения Договора и потребовать возмещения причиненных убытков."),

		heading("acceptance-title", "3. Приемка оказанных услуг"),
		clause("acceptance-3-1", "3.1. После полного оказания услуг в соответствии с условиями настоящего Договора Исполнитель не позднее {{notificationDays}} дней извещает об этом Заказчика. Не позднее {{actSignDays}} дней с момента получения Заказчиком вышеуказанного извещения Сторонами должен быть подписан акт оказанных услуг в двух экземплярах. Данный документ предоставляет Исполнителю право на оплату оказанным им услуг."),
		clause("acceptance-3-2", "3.2. В случае неполного оказания Исполнителем услуг, предусмотренных условиями настоящего Договора, или оказания услуг с отклонением от необходимых требований и характеристик, которые предусмотрены настоящим Договором, Заказчик вправе отказаться от подписания акта оказанных услуг до момента полного устранения Исполнителем соответствующих недостатков."),
		clause("acceptance-3-3", "3.3. При прекращении настоящего Договора до момента оказания услуг в полном объеме, Стороны составляют акт оказанных услуг в отношении фактически оказанных на момент прекращения Договора услуг. Такой акт должен быть составлен и подписан обеими Сторонами не позднее {{terminationActSignDays}} дней с момента прекращения действия настоящего Договора. Оплата указанных в таком акте услуг должна быть произведена Заказчиком не позднее {{terminationPaymentDays}} дней с момента подписания акта обеими Сторонами. В случаях, предусмотренных настоящим Договором, частично оказанные услуги оплате не подлежат."),
		clause("acceptance-3-4", "3.4. Если Заказчик не подписал (отказался от подписания) акт оказанных услуг, Исполнитель вправе подписать данный акт в одностороннем порядке со своей Стороны. Такой односторонний акт приемки оказанных услуг предоставляет Исполнителю право потребовать от Заказчика оплаты оказанных услуг, если только Заказчик не докажет, что в соответствии с условиями настоящего Договора он имел право отказаться от подписания акта оказанных услуг."),
		clause("acceptance-3-5", "3.5. Если услуги оказаны с недостатками, за которые Исполнитель отвечает, Заказчик, кроме прочих установленных законодательством требований, вправе также самостоятельно или с привлечением третьих лиц устранить такие недостатки и потребовать от Исполнителя возмещения своих расходов на их устранение."),
		clause("acceptance-3-6", "3.6. Если услуги были оказаны Исполнителем некачественно либо оказались невыполненными вследствие недоброкачественности предоставленного Заказчиком материала или оборудования либо вследствие исполнения ошибочных указаний Заказчика, Исполнитель вправе требовать оплаты установленной цены с учётом выполненной части услуги."),
		clause("acceptance-3-7", "3.7. Если до окончания оказания услуги возникла невозможность исполнения обязательства Исполнителя по вине Заказчика, Заказчик обязан оплатить Исполнителю стоимость услуг в полном объеме, предусмотренном Договором, независимо от фактического объема оказанных услуг."),
		clause("acceptance-3-8", "3.8. Если до окончания оказания услуги возникла невозможность исполнения обязательства Исполнителя по вине Исполнителя, он не вправе требовать оплаты за фактически оказанные услуги, а также не вправе требовать от Заказчика возмещения расходов."),
		clause("acceptance-3-9", "3.9. Если невозможность исполнения обязательства Исполнителя возникла не по вине Сторон Договора, Заказчик должен оплатить Исполнителю фактически оказанные им к этому моменту услуги."),
		clause("acceptance-3-10", "3.10. Наступление невозможности исполнения обязательства Исполнителя независимо от основания её наступления влечет прекращение настоящего Договора. Такое прекращение Договора не освобождает его Стороны от осуществления вышеуказанных взаиморасчётов и от ответственности за нарушение обязательства при наличия оснований для её применения."),
		clause("acceptance-3-11", "3.11. Риск случайной гибели или случайного повреждения материалов, оборудования или иного используемого для исполнения Договора имущества, несет Заказчик. В этом случае Заказчик должен в течение разумного срока за свой счёт заменить погибшее имущество пригодным для продолжения работы по Договору или за свой счёт восстановить поврежденное имущество. В противном случае Исполнитель вправе отказаться от исполнения настоящего Договора и потребовать оплаты той части услуг, которая была фактически оказана."),

		heading("cost-payment-title", "4. Стоимость услуг и порядок расчетов"),
		clause("cost-payment-4-1", "4.1. Общая стоимость услуг по настоящему Договору составляет {{totalCost}} тенге"),
		clause("cost-payment-4-2", "4.2. Сумма Договора включает в себя все расходы Исполнителя, связанные с оказанием услуг по настоящему Договору."),
		clause("cost-payment-4-3", "4.3. Цена Договора включает в себя НДС ({{vatPercentage}}%) в сумме {{vatAmount}} тенге."),
		clause("cost-payment-4-4", "4.4. Заказчик должен произвести полную предварительную оплату услуг в течение {{prepaymentDays}} с момента заключения настоящего Договора. До момента полной предварительной оплаты Исполнитель вправе не приступать к оказанию услуг; срок завершения оказания услуги в этом случае продлевается на время такого простоя Исполнителя."),
		clause("cost-payment-4-5", "4.5. Оплата услуг производится путем внесения наличных денежных средств в кассу Исполнителя, либо в безналичном порядке на расчетный счет (карту) Исполнителя."),

		heading("responsibility-title", "5. Ответственность Сторон"),
		clause("responsibility-5-1", "5.1. За неисполнение или ненадлежащее исполнение своих обязательств по Договору Стороны несут ответственность в соответствии с действующим законодательством Республики Казахстан."),
		clause("responsibility-5-2", "5.2. Исполнитель за нарушение начального и (или) конечного срока оказания услуг должен выплатить Заказчику неустойку в размере {{serviceDisruptionPenaltyPercent}}% от общей суммы Договора за каждый день соответствующего нарушения."),
		clause("responsibility-5-3", "5.3. В случае просрочки исполнения Стороной настоящего Договора своих денежных обязательств она обязана уплатить другой Стороне Договора неустойку в размере {{latePaymentPenaltyPercent}}% от просроченной суммы за каждый день просрочки."),
		clause("responsibility-5-4", "5.4. Уплата штрафов, пени и неустоек, а также возмещение убытков не освобождают Стороны от исполнения своих обязательств по настоящему Договору."),

		heading("confidentiality-title", "6. Конфиденциальность"),
		clause("confidentiality-6-1", "6.1. Стороны обязуются сохранять строгую конфиденциальность информации, полученной в ходе исполнения настоящего Договора, и принять все возможные меры, чтобы предохранить полученную информацию от разглашения."),
		clause("confidentiality-6-2", "6.2. Передача конфиденциальной информации третьим лицам, опубликование или иное разглашение такой информации могут осуществляться только с письменного согласия другой Стороны независимо от причины прекращения действия настоящего Договора."),
		clause("confidentiality-6-3", "6.3. Ограничения относительно разглашения информации не относятся к общедоступной информации или информации ставшей таковой не по вине Сторон."),
		clause("confidentiality-6-4", "6.4. Стороны не несут ответственности в случае передачи информации субъектам, имеющим право ее затребовать в соответствии с законодательством Республики Казахстан."),
		clause("confidentiality-6-5", "6.5. Обязательства по сохранению конфиденциальности информации действуют в течение времени действия настоящего Договора и {{confidentialityYears}} лет после прекращения его действия."),

		heading("termination-title", "7. Расторжение Договора"),
		clause("termination-7-1", "7.1. Исполнитель вправе в любое время отказаться от исполнения обязательств по настоящему Договору, письменно известив об этом Заказчика за {{terminationNotificationDaysProvider}} дней до расторжения Договора. В этом случае Исполнитель обязан возместить Заказчику убытки, причиненные расторжением Договора. Кроме того, Исполнитель в этом случае не вправе требовать оплаты услуг, выполненных в неполном объеме."),
		clause("termination-7-2", "7.2. Если Исполнитель отказался от исполнения своих обязательств вследствие виновного нарушения Заказчиком своих обязательств по настоящему Договору, Исполнитель освобождается от возмещения таких убытков. Кроме того, Исполнитель в этом случае вправе требовать оплаты части услуг, фактически оказанных к этому моменту."),
		clause("termination-7-3", "7.3. Заказчик вправе в любое время отказаться от исполнения настоящего Договора, письменно известив об этом Исполнителя за {{terminationNotificationDaysCustomer}} дней до расторжения Договора. В этом случае Заказчик обязан оплатить Исполнителю услуги, фактически оказанные им к моменту получения извещения Заказчика об отказе от исполнения настоящего Договора."),
		clause("termination-7-4", "7.4. Прекращение настоящего Договора не освобождает его Стороны от исполнения своих обязательств в части составления и подписания актов оказанных услуг, а также оплаты услуг, фактически оказанных до момента прекращения Договора, за исключением случаев, предусмотренных настоящим Договором."),

		heading("applicable-law-title", "8. Применимое право и порядок разрешения споров"),
		clause("applicable-law-8-1", "8.1. К взаимоотношениям Сторон по настоящему Договору применяется законодательство Республики Казахстан."),
		clause("applicable-law-8-2", "8.2. Перед обращением в суд за разрешением возникшего спора, Сторона настоящего Договора должна направить другой Стороне письменную претензию с указанием своих требований к другой Стороне, с предложением добровольного удовлетворения этих требований и срока для добровольного удовлетворения. Данный досудебный порядок считается соблюденным для цели обращения в суд с момента получения письменного отказа другой Стороны от удовлетворения требования либо при неполучении письменного ответа на претензию в течение 30 дней с момента получения претензии другой Стороной, либо при неудовлетворении другой Стороной изложенного в претензии требования в срок, указанный в претензии. Данный досудебный порядок не распространяется на требования, которые по своему характеру не предполагают возможность другой Стороны Договора удовлетворить их (о признании сделки недействительной и т.п.)."),
		clause("applicable-law-8-3", "8.3. Все споры, разногласия или требования, возникающие из настоящего Договора либо в связи с ним, в том числе касающиеся его нарушения, прекращения или недействительности, подлежат окончательному урегулированию в Арбитражном центре Национальной палаты предпринимателей Республики Казахстан «Атамекен» согласно его действующему Регламенту."),
		clause("applicable-law-8-4", "8.4. Предметом, который подлежит рассмотрению арбитражем, являются все споры, разногласия или требования, возникающие из настоящего Договора либо в связи с ним, в том числе касающиеся его нарушения, прекращения или недействительности."),
		clause("applicable-law-8-5", "8.5. Местом проведения арбитражного разбирательства будет – город Нур-Султан."),

		heading("final-provisions-title", "9. Заключительные положения"),
		clause("final-provisions-9-1", "9.1. Настоящий Договор, а также соглашения о его изменении или дополнении действительны лишь при условии облечения их в письменную форму путем подписания обеими Сторонами единого документа."),
		clause("final-provisions-9-2", "9.2. Обо всех изменениях в банковских, почтовых, электронных и иных реквизитах Стороны обязаны извещать друг друга не позднее двух календарных дней с момента их официального утверждения. Все действия, совершенные Сторонами по старым адресам и счетам до поступления уведомлений об их изменении, считаются совершенными надлежащим образом."),
		clause("final-provisions-9-3", "9.3. Стороны настоящим подтверждают, что на момент подписания Договора:\n- не находились под влиянием обмана, насилия, угрозы;\n- Договор оказания услуг не является мнимым и притворным;\n- обладают правоспособностью и дееспособностью, позволяющими вступать в гражданско-правовые отношения."),
		clause("final-provisions-9-4", "9.4. Стороны пришли к соглашению нотариально не удостоверять настоящий Договор."),
		clause("final-provisions-9-5", "9.5. Настоящий Договор составлен на русском языке, в двух подлинных экземплярах, по одному для каждой Стороны, каждый из которых имеет одинаковую юридическую силу."),

		heading("requisites-title", "10. Реквизиты, юридические адреса и подписи Сторон:"),
	}
}
