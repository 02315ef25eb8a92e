// ABOUTME: Static seed dataset covering every registered resource.
// ABOUTME: Used when OpenAI is unavailable and for the non-AI resources.

package seed

// staticDataset returns the built-in band dataset. Every registered resource
// slug has at least a handful of documents so each admin page renders data.
func staticDataset() Dataset {
	return Dataset{
		"musicians": {
			{"firstName": "Ana", "lastName": "Souza", "email": "ana.souza@abmusica.org", "phone": "(11) 98765-1001", "birthDate": "1988-04-12", "professionalTitle": "Professora de Música", "voz": "1"},
			{"firstName": "Bruno", "lastName": "Lima", "email": "bruno.lima@abmusica.org", "phone": "(11) 98765-1002", "birthDate": "1975-11-03", "professionalTitle": "Engenheiro", "voz": "2"},
			{"firstName": "Carla", "lastName": "Mendes", "email": "carla.mendes@abmusica.org", "phone": "(11) 98765-1003", "birthDate": "1992-07-21", "professionalTitle": "Dentista", "voz": "1"},
			{"firstName": "Diego", "lastName": "Ferreira", "email": "diego.ferreira@abmusica.org", "phone": "(11) 98765-1004", "birthDate": "1980-01-30", "professionalTitle": "Comerciante", "voz": "3"},
			{"firstName": "Elisa", "lastName": "Campos", "email": "elisa.campos@abmusica.org", "phone": "(11) 98765-1005", "birthDate": "1999-09-15", "professionalTitle": "Estudante", "voz": "2"},
			{"firstName": "Fábio", "lastName": "Rocha", "email": "fabio.rocha@abmusica.org", "phone": "(11) 98765-1006", "birthDate": "1968-05-08", "professionalTitle": "Aposentado", "voz": "4"},
			{"firstName": "Gabriela", "lastName": "Nunes", "email": "gabriela.nunes@abmusica.org", "phone": "(11) 98765-1007", "birthDate": "1995-02-27", "professionalTitle": "Enfermeira", "voz": "1"},
			{"firstName": "Henrique", "lastName": "Alves", "email": "henrique.alves@abmusica.org", "phone": "(11) 98765-1008", "birthDate": "1983-12-19", "professionalTitle": "Professor", "voz": "3"},
		},
		"students": {
			{"firstName": "Davi", "lastName": "Melo", "email": "davi.melo@abmusica.org", "phone": "(11) 97654-2001", "birthDate": "2012-03-10", "enrollmentDate": "2024-02-05", "responsibleName": "Marcos Melo", "responsiblePhone": "(11) 97654-2101"},
			{"firstName": "Isabela", "lastName": "Cardoso", "email": "isabela.cardoso@abmusica.org", "phone": "(11) 97654-2002", "birthDate": "2010-08-22", "enrollmentDate": "2023-03-14", "responsibleName": "Renata Cardoso", "responsiblePhone": "(11) 97654-2102"},
			{"firstName": "João Pedro", "lastName": "Teixeira", "email": "joao.teixeira@abmusica.org", "phone": "(11) 97654-2003", "birthDate": "2014-01-05", "enrollmentDate": "2025-02-10", "responsibleName": "Paula Teixeira", "responsiblePhone": "(11) 97654-2103"},
			{"firstName": "Larissa", "lastName": "Moraes", "email": "larissa.moraes@abmusica.org", "phone": "(11) 97654-2004", "birthDate": "2001-06-17", "enrollmentDate": "2024-08-01", "responsibleName": "", "responsiblePhone": ""},
			{"firstName": "Mateus", "lastName": "Barbosa", "email": "mateus.barbosa@abmusica.org", "phone": "(11) 97654-2005", "birthDate": "2009-10-30", "enrollmentDate": "2023-02-20", "responsibleName": "Sérgio Barbosa", "responsiblePhone": "(11) 97654-2105"},
			{"firstName": "Natália", "lastName": "Pires", "email": "natalia.pires@abmusica.org", "phone": "(11) 97654-2006", "birthDate": "1998-04-02", "enrollmentDate": "2025-03-03", "responsibleName": "", "responsiblePhone": ""},
		},
		"songs": {
			{"title": "Aquarela do Brasil", "author": "Ary Barroso", "arranger": "J. Silva", "creationDate": "2023-05-10", "referenceLink": "https://www.youtube.com/watch?v=bBHPpl928UY", "parts": []map[string]any{
				{"instrument": "Trompete", "voice": "1", "urlSheet": "", "urlMidi": ""},
				{"instrument": "Trombone", "voice": "1", "urlSheet": "", "urlMidi": ""},
				{"instrument": "Sax Alto", "voice": "2", "urlSheet": "", "urlMidi": ""},
			}},
			{"title": "Asa Branca", "author": "Luiz Gonzaga", "arranger": "M. Santos", "creationDate": "2022-09-02", "referenceLink": "", "parts": []map[string]any{
				{"instrument": "Clarinete", "voice": "1", "urlSheet": "", "urlMidi": ""},
				{"instrument": "Flauta", "voice": "1", "urlSheet": "", "urlMidi": ""},
			}},
			{"title": "Tico-Tico no Fubá", "author": "Zequinha de Abreu", "arranger": "J. Silva", "creationDate": "2024-03-18", "referenceLink": "https://www.youtube.com/watch?v=6JV9I1t91mA", "parts": []map[string]any{
				{"instrument": "Flauta", "voice": "1", "urlSheet": "", "urlMidi": ""},
				{"instrument": "Percussão", "voice": "1", "urlSheet": "", "urlMidi": ""},
			}},
			{"title": "Vassourinhas", "author": "Matias da Rocha", "arranger": "", "creationDate": "2021-02-11", "referenceLink": "", "parts": []map[string]any{}},
			{"title": "Cisne Branco", "author": "Benedito Lacerda", "arranger": "A. Pereira", "creationDate": "2023-11-07", "referenceLink": "", "parts": []map[string]any{
				{"instrument": "Trompete", "voice": "2", "urlSheet": "", "urlMidi": ""},
			}},
			{"title": "Carinhoso", "author": "Pixinguinha", "arranger": "M. Santos", "creationDate": "2024-06-25", "referenceLink": "https://www.youtube.com/watch?v=MIGgKyzhk0s", "parts": []map[string]any{
				{"instrument": "Sax Tenor", "voice": "1", "urlSheet": "", "urlMidi": ""},
				{"instrument": "Bateria", "voice": "1", "urlSheet": "", "urlMidi": ""},
			}},
		},
		"gallerys": {
			{"title": "Ensaio geral de abril", "type": "photo", "date": "2026-04-12", "url": "https://cdn.abmusica.org/galeria/ensaio-abril.jpg", "category": "Ensaios", "description": "Registros dos ensaios semanais"},
			{"title": "Naipe de metais", "type": "photo", "date": "2026-04-19", "url": "https://cdn.abmusica.org/galeria/metais.jpg", "category": "Ensaios", "description": ""},
			{"title": "Concerto de fim de ano", "type": "video", "date": "2025-12-14", "url": "https://www.youtube.com/watch?v=concerto2025", "category": "Concertos", "description": "Apresentações oficiais da banda"},
			{"title": "Abertura do concerto", "type": "photo", "date": "2025-12-14", "url": "https://cdn.abmusica.org/galeria/concerto-abertura.jpg", "category": "Concertos", "description": ""},
			{"title": "Retiro musical", "type": "photo", "date": "2026-01-20", "url": "https://cdn.abmusica.org/galeria/retiro.jpg", "category": "", "description": ""},
		},
		"patrimonies": {
			{"tagNumber": "PAT-0001", "name": "Mesa de som 16 canais", "description": "Mesa de som Behringer usada nos concertos", "category": "Eletrônico", "acquisitionDate": "2021-03-15", "value": 3200.0, "status": "Disponível", "location": "Sala técnica"},
			{"tagNumber": "PAT-0002", "name": "Estante de partitura (lote)", "description": "Lote com 30 estantes dobráveis", "category": "Mobiliário", "acquisitionDate": "2019-08-02", "value": 1500.0, "status": "Em Uso", "location": "Sala de ensaio"},
			{"tagNumber": "PAT-0003", "name": "Caixa amplificada", "description": "Caixa ativa 400W para apresentações externas", "category": "Eletrônico", "acquisitionDate": "2022-10-11", "value": 2100.0, "status": "Manutenção", "location": "Assistência técnica"},
			{"tagNumber": "PAT-0004", "name": "Armário de instrumentos", "description": "Armário de aço com 12 compartimentos", "category": "Mobiliário", "acquisitionDate": "2018-05-27", "value": 980.0, "status": "Em Uso", "location": "Sala de ensaio"},
			{"tagNumber": "PAT-0005", "name": "Projetor", "description": "Projetor usado nas aulas de teoria", "category": "Eletrônico", "acquisitionDate": "2017-02-08", "value": 1400.0, "status": "Baixado", "location": "Depósito"},
		},
		"instruments": {
			{"tagNumber": "INS-0001", "name": "Trompete Yamaha YTR-2330", "description": "Trompete em Si bemol laqueado", "category": "Patrimonio Musical", "acquisitionDate": "2020-06-10", "value": 4200.0, "status": "Em Uso", "location": "Sala de ensaio", "family": "Metais", "type": "Trompete", "brand": "Yamaha", "model": "YTR-2330", "serialNumber": "Y123456", "imageUrl": "https://cdn.abmusica.org/instrumentos/ytr2330.jpg"},
			{"tagNumber": "INS-0002", "name": "Trombone de vara Eagle", "description": "Trombone tenor em Si bemol", "category": "Patrimonio Musical", "acquisitionDate": "2019-04-22", "value": 2800.0, "status": "Disponível", "location": "Armário 2", "family": "Metais", "type": "Trombone", "brand": "Eagle", "model": "TV600", "serialNumber": "E654321", "imageUrl": ""},
			{"tagNumber": "INS-0003", "name": "Sax Alto Eagle SA501", "description": "Saxofone alto em Mi bemol", "category": "Patrimonio Musical", "acquisitionDate": "2021-09-30", "value": 5100.0, "status": "Em Uso", "location": "Com aluno (comodato)", "family": "Madeiras", "type": "Sax Alto", "brand": "Eagle", "model": "SA501", "serialNumber": "E789012", "imageUrl": ""},
			{"tagNumber": "INS-0004", "name": "Clarinete Yamaha YCL-255", "description": "Clarinete em Si bemol, 17 chaves", "category": "Patrimonio Musical", "acquisitionDate": "2018-11-14", "value": 3600.0, "status": "Manutenção", "location": "Luthier", "family": "Madeiras", "type": "Clarinete", "brand": "Yamaha", "model": "YCL-255", "serialNumber": "Y345678", "imageUrl": ""},
			{"tagNumber": "INS-0005", "name": "Flauta transversal Vogga", "description": "Flauta em Dó niquelada", "category": "Patrimonio Musical", "acquisitionDate": "2022-02-03", "value": 1200.0, "status": "Disponível", "location": "Armário 1", "family": "Madeiras", "type": "Flauta", "brand": "Vogga", "model": "VSFL701", "serialNumber": "V901234", "imageUrl": ""},
			{"tagNumber": "INS-0006", "name": "Bateria completa", "description": "Bateria acústica com pratos", "category": "Patrimonio Musical", "acquisitionDate": "2020-12-08", "value": 4800.0, "status": "Em Uso", "location": "Sala de ensaio", "family": "Percussão", "type": "Bateria", "brand": "Pearl", "model": "Roadshow", "serialNumber": "P567890", "imageUrl": ""},
		},
		"presentations": {
			{"title": "Concerto de Natal", "description": "Apresentação anual no coreto da praça central", "date": "2025-12-20", "location": "Praça Central", "responsibleName": "Ana Souza", "responsiblePhone": "(11) 98765-1001", "responsibleEmail": "ana.souza@abmusica.org", "midiaUrl": []map[string]any{
				{"url": "https://cdn.abmusica.org/apresentacoes/natal-2025.jpg", "title": "Abertura", "type": "photo"},
				{"url": "https://www.youtube.com/watch?v=natal2025", "title": "Vídeo completo", "type": "video"},
			}},
			{"title": "Encontro de Bandas", "description": "Participação no encontro regional de bandas e fanfarras", "date": "2026-05-09", "location": "Ginásio Municipal", "responsibleName": "Bruno Lima", "responsiblePhone": "(11) 98765-1002", "responsibleEmail": "bruno.lima@abmusica.org", "midiaUrl": []map[string]any{}},
			{"title": "Festa da Padroeira", "description": "Abertura da procissão e coreto à noite", "date": "2026-08-15", "location": "Igreja Matriz", "responsibleName": "Carla Mendes", "responsiblePhone": "(11) 98765-1003", "responsibleEmail": "carla.mendes@abmusica.org", "midiaUrl": []map[string]any{
				{"url": "https://cdn.abmusica.org/apresentacoes/padroeira.jpg", "title": "Coreto", "type": "photo"},
			}},
		},
	}
}
